package booking

import (
	"context"

	"github.com/Omralejandro22/luxury-nails-backend/internal/audit"
	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

type AddReviewInput struct {
	UserID        uint
	AppointmentID uint
	Rating        int
	Comment       string
}

// AddReview attaches the one allowed review to a completed appointment the
// caller owns.
type AddReview struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewAddReview(repo domain.Repository, recorder audit.Recorder) *AddReview {
	return &AddReview{repo: repo, audit: recorder}
}

func (uc *AddReview) Execute(
	ctx context.Context,
	in AddReviewInput,
) (*models.Review, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := assertOwnedBy(ap, in.UserID); err != nil {
		return nil, err
	}

	if domain.Status(ap.Status) != domain.StatusCompleted {
		return nil, httperr.ErrBusiness(
			httperr.CodeInvalidState, "can only review completed appointments",
		)
	}

	review := &models.Review{
		AppointmentID: ap.ID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}
	if err := uc.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "review_added",
		Entity:   "review",
		EntityID: &review.ID,
	})

	return review, nil
}

// ListReviews is the flat admin listing, newest first, joined with client
// name and appointment date/time.
type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) Execute(ctx context.Context) ([]domain.ReviewRow, error) {
	return uc.repo.ListReviews(ctx)
}
