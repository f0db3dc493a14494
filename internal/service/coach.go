package service

import (
	"fmt"
	"time"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/database/models"
	"safety-tracker-backend/internal/reconcile"
	"safety-tracker-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CoachService handles business logic for coaches
type CoachService struct {
	store     store.Store
	engine    *reconcile.Engine
	validator *validator.Validate
}

// NewCoachService creates a new coach service
func NewCoachService(st store.Store, engine *reconcile.Engine, validator *validator.Validate) *CoachService {
	return &CoachService{
		store:     st,
		engine:    engine,
		validator: validator,
	}
}

// CoachRequest represents the request to create or update a coach
type CoachRequest struct {
	Name                  string  `json:"name" validate:"required,max=200"`
	HireDate              *string `json:"hire_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	VacationDaysRemaining int     `json:"vacation_days_remaining" validate:"min=0"`
	VacationDaysTotal     int     `json:"vacation_days_total" validate:"min=0,gtefield=VacationDaysRemaining"`
}

// CoachResponse represents the response for coach operations
type CoachResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	HireDate              *string   `json:"hire_date"`
	VacationDaysRemaining int       `json:"vacation_days_remaining"`
	VacationDaysTotal     int       `json:"vacation_days_total"`
	BalancesConfirmed     bool      `json:"balances_confirmed"`
	CreatedAt             string    `json:"created_at"`
	UpdatedAt             string    `json:"updated_at"`
	UpdatedBy             string    `json:"updated_by"`
}

// CoachListResponse represents the roster in creation order
type CoachListResponse struct {
	Coaches []CoachResponse `json:"coaches"`
	Total   int             `json:"total"`
}

// List returns every coach
func (s *CoachService) List() (*CoachListResponse, error) {
	coaches, err := s.store.ListCoaches()
	if err != nil {
		return nil, fmt.Errorf("failed to get coaches: %w", err)
	}

	responses := make([]CoachResponse, len(coaches))
	for i := range coaches {
		responses[i] = *toCoachResponse(&coaches[i])
	}
	return &CoachListResponse{Coaches: responses, Total: len(responses)}, nil
}

// GetByID retrieves a coach by ID
func (s *CoachService) GetByID(id uuid.UUID) (*CoachResponse, error) {
	coach, err := s.store.GetCoach(id)
	if err != nil {
		return nil, err
	}
	return toCoachResponse(coach), nil
}

// Create adds a coach to the roster
func (s *CoachService) Create(identity auth.Identity, req *CoachRequest) (*CoachResponse, error) {
	coach := &models.Coach{}
	if err := s.apply(coach, req); err != nil {
		return nil, err
	}
	if err := s.engine.SaveCoach(identity, coach); err != nil {
		return nil, err
	}
	return toCoachResponse(coach), nil
}

// Update edits a coach, including the vacation balances
func (s *CoachService) Update(identity auth.Identity, id uuid.UUID, req *CoachRequest) (*CoachResponse, error) {
	coach, err := s.store.GetCoach(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(coach, req); err != nil {
		return nil, err
	}
	if err := s.engine.SaveCoach(identity, coach); err != nil {
		return nil, err
	}
	return toCoachResponse(coach), nil
}

func (s *CoachService) apply(coach *models.Coach, req *CoachRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	coach.Name = req.Name
	coach.HireDate = nil
	if req.HireDate != nil {
		hired, _ := time.Parse(models.DateLayout, *req.HireDate)
		coach.HireDate = &hired
	}
	coach.VacationDaysRemaining = req.VacationDaysRemaining
	coach.VacationDaysTotal = req.VacationDaysTotal
	return nil
}

func toCoachResponse(c *models.Coach) *CoachResponse {
	resp := &CoachResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		VacationDaysRemaining: c.VacationDaysRemaining,
		VacationDaysTotal:     c.VacationDaysTotal,
		BalancesConfirmed:     c.BalancesConfirmed,
		CreatedAt:             formatTimestamp(c.CreatedAt),
		UpdatedAt:             formatTimestamp(c.UpdatedAt),
		UpdatedBy:             c.UpdatedBy,
	}
	if c.HireDate != nil {
		hired := c.HireDate.Format(models.DateLayout)
		resp.HireDate = &hired
	}
	return resp
}
