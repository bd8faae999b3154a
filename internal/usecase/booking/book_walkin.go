package booking

import (
	"context"

	"github.com/Omralejandro22/luxury-nails-backend/internal/audit"
	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

type BookWalkInInput struct {
	AdminID uint

	Contact domain.WalkInContact

	Date    string
	Time    string
	StaffID *uint

	ServiceIDs []uint
}

// BookWalkIn is the admin booking path for walk-in and phone clients. The
// trusted channel starts the appointment confirmed, and client resolution
// (including guest account creation) shares the booking transaction.
type BookWalkIn struct {
	repo     domain.Repository
	resolver ClientResolver
	audit    audit.Recorder
	cache    AvailabilityCache
}

func NewBookWalkIn(
	repo domain.Repository,
	recorder audit.Recorder,
	cache AvailabilityCache,
) *BookWalkIn {
	return &BookWalkIn{
		repo:  repo,
		audit: recorder,
		cache: cache,
	}
}

func (uc *BookWalkIn) Execute(
	ctx context.Context,
	in BookWalkInInput,
) (*models.Appointment, error) {

	if in.Contact.Name == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "client name is required")
	}
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "no services selected")
	}

	schedule := domain.Schedule{Date: in.Date, Time: in.Time, StaffID: in.StaffID}
	if err := schedule.Normalize(); err != nil {
		return nil, err
	}

	var created *models.Appointment

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		client, err := uc.resolver.WalkIn(ctx, tx, in.Contact)
		if err != nil {
			return err
		}

		ap := &models.Appointment{
			ClientID: client.ID,
			Date:     schedule.Date,
			Time:     schedule.Time,
			StaffID:  schedule.StaffID,
			Status:   string(domain.InitialStatus(true)),
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
		UserID:   &in.AdminID,
		Action:   "appointment_walkin_booked",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
