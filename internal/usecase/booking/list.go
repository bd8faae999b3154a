package booking

import (
	"context"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
)

// ListAppointments serves both history projections: a client's own bookings
// and the full admin view. Each appointment appears once with its lines
// nested, newest first.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForUser(
	ctx context.Context,
	userID uint,
) ([]domain.AppointmentView, error) {

	rows, err := uc.repo.ListAppointmentRows(ctx, &userID)
	if err != nil {
		return nil, err
	}

	return domain.BuildAppointmentViews(rows), nil
}

func (uc *ListAppointments) All(
	ctx context.Context,
) ([]domain.AppointmentView, error) {

	rows, err := uc.repo.ListAppointmentRows(ctx, nil)
	if err != nil {
		return nil, err
	}

	return domain.BuildAppointmentViews(rows), nil
}
