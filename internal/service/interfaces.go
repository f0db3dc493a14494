package service

import (
	"context"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/reconcile"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PeriodServiceInterface defines the interface for period service
type PeriodServiceInterface interface {
	List() (*PeriodListResponse, error)
	GetByID(id uuid.UUID) (*PeriodResponse, error)
	Create(identity auth.Identity, req *PeriodRequest) (*PeriodResponse, error)
	Update(identity auth.Identity, id uuid.UUID, req *PeriodRequest) (*PeriodResponse, error)
	Delete(identity auth.Identity, id uuid.UUID) error
}

// CoachServiceInterface defines the interface for coach service
type CoachServiceInterface interface {
	List() (*CoachListResponse, error)
	GetByID(id uuid.UUID) (*CoachResponse, error)
	Create(identity auth.Identity, req *CoachRequest) (*CoachResponse, error)
	Update(identity auth.Identity, id uuid.UUID, req *CoachRequest) (*CoachResponse, error)
}

// MetricServiceInterface defines the interface for safety metric service
type MetricServiceInterface interface {
	ListByPeriod(periodID uuid.UUID) (*MetricListResponse, error)
	Upsert(identity auth.Identity, periodID, coachID uuid.UUID, req *MetricRequest) (*MetricResponse, error)
}

// ImportServiceInterface defines the interface for workbook import service
type ImportServiceInterface interface {
	Import(ctx context.Context, identity auth.Identity, req *ImportRequest) (*reconcile.Report, error)
}

var (
	_ PeriodServiceInterface = (*PeriodService)(nil)
	_ CoachServiceInterface  = (*CoachService)(nil)
	_ MetricServiceInterface = (*MetricService)(nil)
	_ ImportServiceInterface = (*ImportService)(nil)
)
