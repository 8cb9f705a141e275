package court

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

// RegisterRoutes wires the public read endpoints and the admin-only
// CRUD endpoints; main.go attaches the role middleware to admin.
func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/courts", h.ListCourts)
	public.GET("/courts/:id", h.GetCourt)

	admin.POST("/courts", h.CreateCourt)
	admin.PUT("/courts/:id", h.UpdateCourt)
	admin.DELETE("/courts/:id", h.DeleteCourt)
	admin.POST("/courts/:id/closed-dates", h.AddClosedDate)
	admin.DELETE("/courts/:id/closed-dates/:date", h.RemoveClosedDate)
}

func (h *Handler) ListCourts(c *gin.Context) {
	courts, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courts": courts})
}

func (h *Handler) GetCourt(c *gin.Context) {
	id, ok := courtID(c)
	if !ok {
		return
	}

	court, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"court": court})
}

func (h *Handler) CreateCourt(c *gin.Context) {
	var body createCourtBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	court, err := h.service.Create(c.Request.Context(), body.toRequest())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"court": court})
}

func (h *Handler) UpdateCourt(c *gin.Context) {
	id, ok := courtID(c)
	if !ok {
		return
	}

	var body updateCourtBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	court, err := h.service.Update(c.Request.Context(), id, body.toRequest())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"court": court})
}

func (h *Handler) DeleteCourt(c *gin.Context) {
	id, ok := courtID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) AddClosedDate(c *gin.Context) {
	id, ok := courtID(c)
	if !ok {
		return
	}

	var req ClosedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	court, err := h.service.AddClosedDate(c.Request.Context(), id, req.Date)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"court": court})
}

func (h *Handler) RemoveClosedDate(c *gin.Context) {
	id, ok := courtID(c)
	if !ok {
		return
	}

	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, want YYYY-MM-DD")
		return
	}

	court, err := h.service.RemoveClosedDate(c.Request.Context(), id, date)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"court": court})
}

func courtID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid court ID")
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Court not found")
	case errors.Is(err, ErrInvalidHours):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_HOURS", "Opening hour must be before closing hour")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Status must be available, maintenance or closed")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid court data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
