package booking

import (
	"context"

	"github.com/Omralejandro22/luxury-nails-backend/internal/audit"
	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID uint

	Date    string
	Time    string
	StaffID *uint

	ServiceIDs []uint
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	resolver ClientResolver
	audit    audit.Recorder
	cache    AvailabilityCache
}

func NewBookAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
	cache AvailabilityCache,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: recorder,
		cache: cache,
	}
}

// Execute books an appointment for the authenticated client. The whole
// sequence (resolve client, insert appointment, freeze one line per service,
// snapshot the total) runs in one transaction; any failure rolls it back and
// nothing persists.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "no services selected")
	}

	schedule := domain.Schedule{Date: in.Date, Time: in.Time, StaffID: in.StaffID}
	if err := schedule.Normalize(); err != nil {
		return nil, err
	}

	var created *models.Appointment

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		client, err := uc.resolver.ForAccount(ctx, tx, in.UserID)
		if err != nil {
			return err
		}

		ap := &models.Appointment{
			ClientID: client.ID,
			Date:     schedule.Date,
			Time:     schedule.Time,
			StaffID:  schedule.StaffID,
			Status:   string(domain.InitialStatus(false)),
		}
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		total, err := attachLines(ctx, tx, ap.ID, in.ServiceIDs)
		if err != nil {
			return err
		}

		ap.Total = total
		if err := tx.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDate(ctx, created.Date)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
