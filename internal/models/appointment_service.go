package models

import "github.com/shopspring/decimal"

// AppointmentService is one service attached to an appointment with its
// price frozen at the moment of booking. Lines are replaced wholesale on
// edit, never patched individually.
type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index;not null" json:"appointment_id"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	PriceAtBooking decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_at_booking"`
}
