package booking

import (
	"context"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
)

// GetMonthOccupancy counts active appointments per calendar date in a month.
// Dates are stored and grouped as plain YYYY-MM-DD values, so the result can
// never shift a day under a different host timezone.
type GetMonthOccupancy struct {
	repo domain.Repository
}

func NewGetMonthOccupancy(repo domain.Repository) *GetMonthOccupancy {
	return &GetMonthOccupancy{repo: repo}
}

func (uc *GetMonthOccupancy) Execute(
	ctx context.Context,
	month string,
) (map[string]int, error) {

	if !domain.ValidMonth(month) {
		return nil, httperr.ErrBusiness(
			httperr.CodeInvalidInput, "month must be YYYY-MM",
		)
	}

	counts, err := uc.repo.OccupancyForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int, len(counts))
	for _, dc := range counts {
		byDate[dc.Date] = dc.Count
	}

	return byDate, nil
}
