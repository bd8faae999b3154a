package booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

// PriceOracle resolves the current catalog price for a service, active or
// not. Booking freezes the returned value into the line item.
type PriceOracle interface {
	ServicePrice(ctx context.Context, serviceID uint) (decimal.Decimal, error)
}

// DateCount is one day of the month-occupancy projection.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AppointmentRow is one row of the flat appointment/line join. Line columns
// are nullable because appointments are LEFT JOINed to their lines.
type AppointmentRow struct {
	ID     uint
	Date   string
	Time   string
	Status string
	Total  decimal.Decimal

	ClientName  string
	ClientEmail string
	ClientPhone string

	StaffName *string

	ServiceID      *uint
	ServiceName    *string
	DurationMin    *int
	PriceAtBooking decimal.NullDecimal
}

// ReviewRow is the admin review listing joined with the originating client
// and appointment.
type ReviewRow struct {
	ID         uint            `json:"id"`
	Rating     int             `json:"rating"`
	Comment    string          `json:"comment"`
	CreatedAt  time.Time       `json:"created_at"`
	ClientName string          `json:"client_name"`
	Date       string          `json:"date"`
	Time       string          `json:"time"`
	Total      decimal.Decimal `json:"total"`
}

// Repository is the persistence boundary of the booking core. InTx hands the
// closure a repository bound to one transaction; every write path of the
// ledger runs inside exactly one such scope and the transaction is released
// on every exit, success or not.
type Repository interface {
	PriceOracle

	InTx(ctx context.Context, fn func(tx Repository) error) error

	// ----- client resolution -----
	GetClientByUserID(ctx context.Context, userID uint) (*models.Client, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	CreateClient(ctx context.Context, cl *models.Client) error

	// ----- appointment ledger -----
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	// GetAppointment preloads the owning Client so callers can check
	// ownership; returns a not_found business error when absent.
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	SaveAppointment(ctx context.Context, ap *models.Appointment) error
	InsertLine(ctx context.Context, line *models.AppointmentService) error
	DeleteLines(ctx context.Context, appointmentID uint) error

	// ----- read models -----
	ListAppointmentRows(ctx context.Context, userID *uint) ([]AppointmentRow, error)
	OccupiedTimes(ctx context.Context, date string, staffID *uint) ([]string, error)
	OccupancyForMonth(ctx context.Context, month string) ([]DateCount, error)

	// ----- reviews -----
	CreateReview(ctx context.Context, rv *models.Review) error
	ListReviews(ctx context.Context) ([]ReviewRow, error)
}
