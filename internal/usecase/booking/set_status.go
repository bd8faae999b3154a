package booking

import (
	"context"

	"github.com/Omralejandro22/luxury-nails-backend/internal/audit"
	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

// SetStatus is the administrative override: any known status can be written
// directly, transition legality is not checked at this entry point.
type SetStatus struct {
	repo  domain.Repository
	audit audit.Recorder
	cache AvailabilityCache
}

func NewSetStatus(
	repo domain.Repository,
	recorder audit.Recorder,
	cache AvailabilityCache,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: recorder,
		cache: cache,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	status := domain.Status(newStatus)
	if !status.Valid() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "unknown status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	ap.Status = string(status)
	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDate(ctx, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_status_set",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": string(status)},
	})

	return ap, nil
}
