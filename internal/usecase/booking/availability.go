package booking

import (
	"context"
	"time"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
)

// GetAvailability answers which HH:MM slots are taken on a date, optionally
// for one staff member. Only pending and confirmed appointments hold slots;
// completed and cancelled ones free them for display.
type GetAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, cache AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	staffID *uint,
) ([]string, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "date must be YYYY-MM-DD")
	}

	if uc.cache != nil {
		if times, ok := uc.cache.GetOccupied(ctx, date, staffID); ok {
			return times, nil
		}
	}

	stored, err := uc.repo.OccupiedTimes(ctx, date, staffID)
	if err != nil {
		return nil, err
	}

	occupied := make([]string, 0, len(stored))
	for _, t := range stored {
		occupied = append(occupied, domain.TruncateTime(t))
	}

	if uc.cache != nil {
		uc.cache.SetOccupied(ctx, date, staffID, occupied)
	}

	return occupied, nil
}
