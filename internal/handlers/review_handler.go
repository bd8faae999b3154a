package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httpresp"
	ucBooking "github.com/Omralejandro22/luxury-nails-backend/internal/usecase/booking"
)

type ReviewHandler struct {
	add  *ucBooking.AddReview
	list *ucBooking.ListReviews
}

func NewReviewHandler(add *ucBooking.AddReview, list *ucBooking.ListReviews) *ReviewHandler {
	return &ReviewHandler{add: add, list: list}
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Add(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review payload.")
		return
	}

	review, err := h.add.Execute(c.Request.Context(), ucBooking.AddReviewInput{
		UserID:        userID,
		AppointmentID: id,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		respondError(c, err, "failed_to_review", "Could not add the review.")
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListAll(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, rows)
}
