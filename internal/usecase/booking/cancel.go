package booking

import (
	"context"

	"github.com/Omralejandro22/luxury-nails-backend/internal/audit"
	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

// CancelAppointment is the client-initiated cancellation: own appointments
// only, and never out of a terminal state.
type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
	cache AvailabilityCache
}

func NewCancelAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
	cache AvailabilityCache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: recorder,
		cache: cache,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := assertOwnedBy(ap, userID); err != nil {
		return nil, err
	}

	if err := domain.CanClientCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusCancelled)
	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDate(ctx, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
