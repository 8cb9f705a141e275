package booking

import (
	"errors"
	"net/http"
	"strconv"

	"courtbook/internal/domain"
	"courtbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the authenticated booking endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateReservation)
	rg.GET("/bookings", h.ListMyReservations)
	rg.GET("/bookings/:id", h.GetReservation)
	rg.PUT("/bookings/:id", h.RescheduleReservation)
	rg.DELETE("/bookings/:id", h.CancelReservation)
}

// RegisterCourtRoutes wires the per-court read endpoints onto the
// public court group.
func (h *Handler) RegisterCourtRoutes(public, admin *gin.RouterGroup) {
	public.GET("/courts/:id/availability", h.CourtAvailability)
	admin.GET("/courts/:id/bookings", h.ListCourtReservations)
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetInt64("user_id"),
		Role:   domain.UserRole(c.GetString("role")),
	}
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var body createReservationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), actorFrom(c), body.toRequest())
	if err != nil {
		writeEngineError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": r})
}

func (h *Handler) RescheduleReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var body rescheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Reschedule(c.Request.Context(), actorFrom(c), id, body.toRequest())
	if err != nil {
		writeEngineError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": r})
}

func (h *Handler) CancelReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	r, err := h.service.Cancel(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": r})
}

func (h *Handler) GetReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": r})
}

func (h *Handler) ListMyReservations(c *gin.Context) {
	list, err := h.service.ListMine(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeEngineError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) ListCourtReservations(c *gin.Context) {
	courtID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid court ID")
		return
	}

	list, err := h.service.ListByCourt(c.Request.Context(), courtID)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) CourtAvailability(c *gin.Context) {
	courtID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid court ID")
		return
	}

	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid or missing date, want YYYY-MM-DD")
		return
	}

	day, err := h.service.Availability(c.Request.Context(), courtID, date)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"availability": day})
}

func reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

// writeEngineError maps every engine rejection to a distinct error code
// so clients can render precise messages.
func writeEngineError(c *gin.Context, err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		response.ErrorWithDetails(c, http.StatusConflict, "SLOT_CONFLICT",
			"Time slot is already booked", gin.H{"conflicting_ids": conflict.ConflictingIDs})
		return
	}

	var hours *HoursError
	if errors.As(err, &hours) {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "OUTSIDE_OPERATING_HOURS",
			hours.Error(), gin.H{"openingHour": hours.Open, "closingHour": hours.Close})
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrCourtNotFound):
		response.Error(c, http.StatusNotFound, "COURT_NOT_FOUND", "Court not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed to modify this booking")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Cancelled bookings cannot be changed")
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_DATE", "Date must be YYYY-MM-DD")
	case errors.Is(err, ErrPastDate):
		response.Error(c, http.StatusUnprocessableEntity, "PAST_DATE", "Cannot book for past dates")
	case errors.Is(err, ErrInvalidInterval):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_INTERVAL", "End time must be after start time")
	case errors.Is(err, ErrCourtUnavailable):
		response.Error(c, http.StatusUnprocessableEntity, "COURT_UNAVAILABLE", "Court is not available for booking")
	case errors.Is(err, ErrCourtClosed):
		response.Error(c, http.StatusUnprocessableEntity, "COURT_CLOSED", "Court is closed on this date")
	case errors.Is(err, ErrSlotConflict):
		response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "Time slot is already booked")
	case errors.Is(err, ErrUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "TRY_AGAIN", "Could not commit booking, try again")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
