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

// PeriodService handles business logic for bi-weekly periods
type PeriodService struct {
	store     store.Store
	engine    *reconcile.Engine
	validator *validator.Validate
}

// NewPeriodService creates a new period service
func NewPeriodService(st store.Store, engine *reconcile.Engine, validator *validator.Validate) *PeriodService {
	return &PeriodService{
		store:     st,
		engine:    engine,
		validator: validator,
	}
}

// PeriodRequest represents the request to create or update a period
type PeriodRequest struct {
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	DisplayName string `json:"display_name" validate:"max=100"`
}

// PeriodResponse represents the response for period operations
type PeriodResponse struct {
	ID          uuid.UUID `json:"id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	DisplayName string    `json:"display_name"`
	CreatedAt   string    `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedAt   string    `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by"`
}

// PeriodListResponse represents the list of all periods in creation order
type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
	Total   int              `json:"total"`
}

// List returns every period
func (s *PeriodService) List() (*PeriodListResponse, error) {
	periods, err := s.store.ListPeriods()
	if err != nil {
		return nil, fmt.Errorf("failed to get periods: %w", err)
	}

	responses := make([]PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = *toPeriodResponse(&periods[i])
	}
	return &PeriodListResponse{Periods: responses, Total: len(responses)}, nil
}

// GetByID retrieves a period by ID
func (s *PeriodService) GetByID(id uuid.UUID) (*PeriodResponse, error) {
	period, err := s.store.GetPeriod(id)
	if err != nil {
		return nil, err
	}
	return toPeriodResponse(period), nil
}

// Create creates a new period
func (s *PeriodService) Create(identity auth.Identity, req *PeriodRequest) (*PeriodResponse, error) {
	period := &models.BiWeeklyPeriod{}
	if err := s.apply(period, req); err != nil {
		return nil, err
	}
	if err := s.engine.SavePeriod(identity, period); err != nil {
		return nil, err
	}
	return toPeriodResponse(period), nil
}

// Update changes the dates or name of a period
func (s *PeriodService) Update(identity auth.Identity, id uuid.UUID, req *PeriodRequest) (*PeriodResponse, error) {
	period, err := s.store.GetPeriod(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(period, req); err != nil {
		return nil, err
	}
	if err := s.engine.SavePeriod(identity, period); err != nil {
		return nil, err
	}
	return toPeriodResponse(period), nil
}

// Delete removes a period that no safety metric refers to
func (s *PeriodService) Delete(identity auth.Identity, id uuid.UUID) error {
	return s.engine.DeletePeriod(identity, id)
}

func (s *PeriodService) apply(period *models.BiWeeklyPeriod, req *PeriodRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}
	// Formats were checked by the validator
	period.StartDate, _ = time.Parse(models.DateLayout, req.StartDate)
	period.EndDate, _ = time.Parse(models.DateLayout, req.EndDate)
	period.DisplayName = req.DisplayName
	return nil
}

func toPeriodResponse(p *models.BiWeeklyPeriod) *PeriodResponse {
	return &PeriodResponse{
		ID:          p.ID,
		StartDate:   p.StartDate.Format(models.DateLayout),
		EndDate:     p.EndDate.Format(models.DateLayout),
		DisplayName: p.DisplayName,
		CreatedAt:   formatTimestamp(p.CreatedAt),
		CreatedBy:   p.CreatedBy,
		UpdatedAt:   formatTimestamp(p.UpdatedAt),
		UpdatedBy:   p.UpdatedBy,
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
