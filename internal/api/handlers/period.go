package handlers

import (
	"net/http"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PeriodHandler handles HTTP requests for bi-weekly periods
type PeriodHandler struct {
	periodService service.PeriodServiceInterface
}

// NewPeriodHandler creates a new period handler
func NewPeriodHandler(periodService service.PeriodServiceInterface) *PeriodHandler {
	return &PeriodHandler{
		periodService: periodService,
	}
}

// ListPeriods handles GET /periods
// @Summary List periods
// @Description List every bi-weekly period ordered by start date
// @Tags periods
// @Accept json
// @Produce json
// @Success 200 {object} service.PeriodListResponse "Successfully retrieved periods"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /periods [get]
func (h *PeriodHandler) ListPeriods(c *gin.Context) {
	resp, err := h.periodService.List()
	if err != nil {
		respondError(c, err, "Failed to get periods")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPeriod handles GET /periods/:id
// @Summary Get period by ID
// @Description Get a specific bi-weekly period by its UUID
// @Tags periods
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 200 {object} service.PeriodResponse "Successfully retrieved period"
// @Failure 400 {object} ErrorResponse "Invalid period ID"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Security BearerAuth
// @Router /periods/{id} [get]
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	id, ok := parseID(c, "id", "period")
	if !ok {
		return
	}

	period, err := h.periodService.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get period")
		return
	}

	c.JSON(http.StatusOK, period)
}

// CreatePeriod handles POST /periods
// @Summary Create a new period
// @Description Create a bi-weekly period. The end date is exclusive and the range must not overlap an existing period.
// @Tags periods
// @Accept json
// @Produce json
// @Param period body service.PeriodRequest true "Period data"
// @Success 201 {object} service.PeriodResponse "Successfully created period"
// @Failure 400 {object} ErrorResponse "Invalid request body, date range or overlap"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 409 {object} ErrorResponse "A period with the same range exists"
// @Security BearerAuth
// @Router /periods [post]
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	var req service.PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	period, err := h.periodService.Create(auth.GetIdentity(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create period")
		return
	}

	c.JSON(http.StatusCreated, period)
}

// UpdatePeriod handles PUT /periods/:id
// @Summary Update period
// @Description Update the range or display name of an existing period
// @Tags periods
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Param period body service.PeriodRequest true "Period data"
// @Success 200 {object} service.PeriodResponse "Successfully updated period"
// @Failure 400 {object} ErrorResponse "Invalid period ID, request body, date range or overlap"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 409 {object} ErrorResponse "A period with the same range exists"
// @Security BearerAuth
// @Router /periods/{id} [put]
func (h *PeriodHandler) UpdatePeriod(c *gin.Context) {
	id, ok := parseID(c, "id", "period")
	if !ok {
		return
	}

	var req service.PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	period, err := h.periodService.Update(auth.GetIdentity(c), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update period")
		return
	}

	c.JSON(http.StatusOK, period)
}

// DeletePeriod handles DELETE /periods/:id
// @Summary Delete period
// @Description Delete a period that has no safety metrics recorded against it
// @Tags periods
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 204 "Period deleted"
// @Failure 400 {object} ErrorResponse "Invalid period ID"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Failure 409 {object} ErrorResponse "Period still has metrics"
// @Security BearerAuth
// @Router /periods/{id} [delete]
func (h *PeriodHandler) DeletePeriod(c *gin.Context) {
	id, ok := parseID(c, "id", "period")
	if !ok {
		return
	}

	if err := h.periodService.Delete(auth.GetIdentity(c), id); err != nil {
		respondError(c, err, "Failed to delete period")
		return
	}

	c.Status(http.StatusNoContent)
}
