package handlers

import (
	"net/http"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MetricHandler handles HTTP requests for safety metrics
type MetricHandler struct {
	metricService service.MetricServiceInterface
}

// NewMetricHandler creates a new safety metric handler
func NewMetricHandler(metricService service.MetricServiceInterface) *MetricHandler {
	return &MetricHandler{
		metricService: metricService,
	}
}

// ListMetrics handles GET /periods/:id/metrics
// @Summary List metrics of a period
// @Description List the safety metrics recorded for every coach in a period
// @Tags metrics
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Success 200 {object} service.MetricListResponse "Successfully retrieved metrics"
// @Failure 400 {object} ErrorResponse "Invalid period ID"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Security BearerAuth
// @Router /periods/{id}/metrics [get]
func (h *MetricHandler) ListMetrics(c *gin.Context) {
	periodID, ok := parseID(c, "id", "period")
	if !ok {
		return
	}

	resp, err := h.metricService.ListByPeriod(periodID)
	if err != nil {
		respondError(c, err, "Failed to get safety metrics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpsertMetric handles PUT /periods/:id/metrics/:coach_id
// @Summary Save a coach's metrics for a period
// @Description Create or replace the safety metrics of one coach in one period
// @Tags metrics
// @Accept json
// @Produce json
// @Param id path string true "Period ID (UUID)"
// @Param coach_id path string true "Coach ID (UUID)"
// @Param metric body service.MetricRequest true "Metric data"
// @Success 200 {object} service.MetricResponse "Successfully saved metrics"
// @Failure 400 {object} ErrorResponse "Invalid ID, request body or negative count"
// @Failure 404 {object} ErrorResponse "Period or coach not found"
// @Security BearerAuth
// @Router /periods/{id}/metrics/{coach_id} [put]
func (h *MetricHandler) UpsertMetric(c *gin.Context) {
	periodID, ok := parseID(c, "id", "period")
	if !ok {
		return
	}
	coachID, ok := parseID(c, "coach_id", "coach")
	if !ok {
		return
	}

	var req service.MetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	metric, err := h.metricService.Upsert(auth.GetIdentity(c), periodID, coachID, &req)
	if err != nil {
		respondError(c, err, "Failed to save safety metric")
		return
	}

	c.JSON(http.StatusOK, metric)
}
