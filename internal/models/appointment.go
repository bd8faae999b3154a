package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Date and Time are stored as plain strings (YYYY-MM-DD and HH:MM) so
	// calendar grouping never goes through a timezone conversion.
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	StaffID *uint `gorm:"index" json:"staff_id"`
	Staff   *User `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Total is a snapshot summed from the line items at booking/edit time,
	// never recomputed from current catalog prices.
	Total decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
