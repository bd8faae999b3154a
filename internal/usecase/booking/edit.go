package booking

import (
	"context"

	"github.com/Omralejandro22/luxury-nails-backend/internal/audit"
	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

type EditAppointmentInput struct {
	AdminID       uint
	AppointmentID uint

	Date    string
	Time    string
	StaffID *uint

	ServiceIDs []uint
}

// EditAppointment rewrites an appointment's schedule and service lines in
// one transaction. Lines are replaced wholesale and the total recomputed
// from freshly frozen prices; if re-pricing fails the schedule change rolls
// back with it.
type EditAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
	cache AvailabilityCache
}

func NewEditAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
	cache AvailabilityCache,
) *EditAppointment {
	return &EditAppointment{
		repo:  repo,
		audit: recorder,
		cache: cache,
	}
}

func (uc *EditAppointment) Execute(
	ctx context.Context,
	in EditAppointmentInput,
) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "no services selected")
	}

	schedule := domain.Schedule{Date: in.Date, Time: in.Time, StaffID: in.StaffID}
	if err := schedule.Normalize(); err != nil {
		return nil, err
	}

	var edited *models.Appointment
	var previousDate string

	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		ap, err := tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return err
		}
		previousDate = ap.Date

		ap.Date = schedule.Date
		ap.Time = schedule.Time
		ap.StaffID = schedule.StaffID

		if err := tx.DeleteLines(ctx, ap.ID); err != nil {
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

		edited = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDate(ctx, previousDate)
		if edited.Date != previousDate {
			uc.cache.InvalidateDate(ctx, edited.Date)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "appointment_edited",
		Entity:   "appointment",
		EntityID: &edited.ID,
	})

	return edited, nil
}
