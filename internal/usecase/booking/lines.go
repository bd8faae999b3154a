package booking

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

// AvailabilityCache is the optional occupied-slots cache in front of the
// availability reads. Writes that touch a date must invalidate it.
type AvailabilityCache interface {
	GetOccupied(ctx context.Context, date string, staffID *uint) ([]string, bool)
	SetOccupied(ctx context.Context, date string, staffID *uint, times []string)
	InvalidateDate(ctx context.Context, date string)
}

// attachLines inserts one frozen-price line per service and returns the sum.
// Any unknown service id aborts the caller's transaction; no partial lines
// survive.
func attachLines(
	ctx context.Context,
	tx domain.Repository,
	appointmentID uint,
	serviceIDs []uint,
) (decimal.Decimal, error) {

	total := decimal.Zero

	for _, serviceID := range serviceIDs {
		price, err := tx.ServicePrice(ctx, serviceID)
		if err != nil {
			return decimal.Zero, err
		}

		line := models.AppointmentService{
			AppointmentID:  appointmentID,
			ServiceID:      serviceID,
			PriceAtBooking: price,
		}
		if err := tx.InsertLine(ctx, &line); err != nil {
			return decimal.Zero, err
		}

		total = total.Add(price)
	}

	return total, nil
}
