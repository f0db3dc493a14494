package handlers

import (
	"net/http"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CoachHandler handles HTTP requests for coaches
type CoachHandler struct {
	coachService service.CoachServiceInterface
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coachService service.CoachServiceInterface) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
	}
}

// ListCoaches handles GET /coaches
// @Summary List coaches
// @Description List every coach ordered by name
// @Tags coaches
// @Accept json
// @Produce json
// @Success 200 {object} service.CoachListResponse "Successfully retrieved coaches"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /coaches [get]
func (h *CoachHandler) ListCoaches(c *gin.Context) {
	resp, err := h.coachService.List()
	if err != nil {
		respondError(c, err, "Failed to get coaches")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCoach handles GET /coaches/:id
// @Summary Get coach by ID
// @Description Get a specific coach by their UUID
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path string true "Coach ID (UUID)"
// @Success 200 {object} service.CoachResponse "Successfully retrieved coach"
// @Failure 400 {object} ErrorResponse "Invalid coach ID"
// @Failure 404 {object} ErrorResponse "Coach not found"
// @Security BearerAuth
// @Router /coaches/{id} [get]
func (h *CoachHandler) GetCoach(c *gin.Context) {
	id, ok := parseID(c, "id", "coach")
	if !ok {
		return
	}

	coach, err := h.coachService.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get coach")
		return
	}

	c.JSON(http.StatusOK, coach)
}

// CreateCoach handles POST /coaches
// @Summary Create a new coach
// @Description Create a coach. Names are unique ignoring case, accents and spacing.
// @Tags coaches
// @Accept json
// @Produce json
// @Param coach body service.CoachRequest true "Coach data"
// @Success 201 {object} service.CoachResponse "Successfully created coach"
// @Failure 400 {object} ErrorResponse "Invalid request body or vacation balance"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 409 {object} ErrorResponse "A coach with the same name exists"
// @Security BearerAuth
// @Router /coaches [post]
func (h *CoachHandler) CreateCoach(c *gin.Context) {
	var req service.CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	coach, err := h.coachService.Create(auth.GetIdentity(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create coach")
		return
	}

	c.JSON(http.StatusCreated, coach)
}

// UpdateCoach handles PUT /coaches/:id. Balances set here are confirmed and
// no later import overwrites them.
// @Summary Update coach
// @Description Update a coach. Vacation balances set here are confirmed and never backfilled by an import.
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path string true "Coach ID (UUID)"
// @Param coach body service.CoachRequest true "Coach data"
// @Success 200 {object} service.CoachResponse "Successfully updated coach"
// @Failure 400 {object} ErrorResponse "Invalid coach ID, request body or vacation balance"
// @Failure 404 {object} ErrorResponse "Coach not found"
// @Failure 409 {object} ErrorResponse "A coach with the same name exists"
// @Security BearerAuth
// @Router /coaches/{id} [put]
func (h *CoachHandler) UpdateCoach(c *gin.Context) {
	id, ok := parseID(c, "id", "coach")
	if !ok {
		return
	}

	var req service.CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	coach, err := h.coachService.Update(auth.GetIdentity(c), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update coach")
		return
	}

	c.JSON(http.StatusOK, coach)
}
