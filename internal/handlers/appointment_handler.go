package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httpresp"
	"github.com/Omralejandro22/luxury-nails-backend/internal/monitoring"
	ucBooking "github.com/Omralejandro22/luxury-nails-backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book      *ucBooking.BookAppointment
	walkIn    *ucBooking.BookWalkIn
	edit      *ucBooking.EditAppointment
	setStatus *ucBooking.SetStatus
	cancel    *ucBooking.CancelAppointment
	list      *ucBooking.ListAppointments
	slots     *ucBooking.GetAvailability
	occupancy *ucBooking.GetMonthOccupancy
}

func NewAppointmentHandler(
	book *ucBooking.BookAppointment,
	walkIn *ucBooking.BookWalkIn,
	edit *ucBooking.EditAppointment,
	setStatus *ucBooking.SetStatus,
	cancel *ucBooking.CancelAppointment,
	list *ucBooking.ListAppointments,
	slots *ucBooking.GetAvailability,
	occupancy *ucBooking.GetMonthOccupancy,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:      book,
		walkIn:    walkIn,
		edit:      edit,
		setStatus: setStatus,
		cancel:    cancel,
		list:      list,
		slots:     slots,
		occupancy: occupancy,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	StaffID    *uint  `json:"staff_id"`
	ServiceIDs []uint `json:"service_ids"`
}

type BookWalkInRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	StaffID    *uint  `json:"staff_id"`
	ServiceIDs []uint `json:"service_ids"`
}

type EditAppointmentRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	StaffID    *uint  `json:"staff_id"`
	ServiceIDs []uint `json:"service_ids"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// BOOKING
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		UserID:     userID,
		Date:       req.Date,
		Time:       req.Time,
		StaffID:    req.StaffID,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		monitoring.BookingsTotal.WithLabelValues("failed").Inc()
		respondError(c, err, "failed_to_book", "Could not book the appointment.")
		return
	}

	monitoring.BookingsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"id":     ap.ID,
		"status": ap.Status,
		"total":  ap.Total,
	})
}

func (h *AppointmentHandler) CreateWalkIn(c *gin.Context) {
	adminID := currentUserID(c)

	var req BookWalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.walkIn.Execute(c.Request.Context(), ucBooking.BookWalkInInput{
		AdminID: adminID,
		Contact: domain.WalkInContact{
			Name:  req.Name,
			Phone: req.Phone,
			Email: req.Email,
		},
		Date:       req.Date,
		Time:       req.Time,
		StaffID:    req.StaffID,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		monitoring.BookingsTotal.WithLabelValues("failed").Inc()
		respondError(c, err, "failed_to_book", "Could not book the appointment.")
		return
	}

	monitoring.BookingsTotal.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"id":     ap.ID,
		"status": ap.Status,
		"total":  ap.Total,
	})
}

// ======================================================
// EDIT / STATUS / CANCEL
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	adminID := currentUserID(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req EditAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid edit payload.")
		return
	}

	ap, err := h.edit.Execute(c.Request.Context(), ucBooking.EditAppointmentInput{
		AdminID:       adminID,
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		StaffID:       req.StaffID,
		ServiceIDs:    req.ServiceIDs,
	})
	if err != nil {
		respondError(c, err, "failed_to_update", "Could not update the appointment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     ap.ID,
		"status": ap.Status,
		"total":  ap.Total,
	})
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := currentUserID(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), adminID, id, req.Status)
	if err != nil {
		respondError(c, err, "failed_to_set_status", "Could not update the status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": ap.ID, "status": ap.Status})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "failed_to_cancel", "Could not cancel the appointment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": ap.ID, "status": ap.Status})
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := currentUserID(c)

	views, err := h.list.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list", "Could not list appointments.")
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	views, err := h.list.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list", "Could not list appointments.")
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_input", "date is required")
		return
	}

	var staffID *uint
	if raw := c.Query("staff_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_input", "staff_id must be numeric")
			return
		}
		id := uint(parsed)
		staffID = &id
	}

	occupied, err := h.slots.Execute(c.Request.Context(), date, staffID)
	if err != nil {
		respondError(c, err, "failed_availability", "Could not read availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"occupied_times": occupied})
}

func (h *AppointmentHandler) Occupancy(c *gin.Context) {
	month := c.Query("month")

	byDate, err := h.occupancy.Execute(c.Request.Context(), month)
	if err != nil {
		respondError(c, err, "failed_occupancy", "Could not read occupancy.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"occupancy_by_date": byDate})
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "id must be numeric")
		return 0, false
	}
	return uint(parsed), true
}
