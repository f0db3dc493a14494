package repository

import (
	"safety-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SafetyMetricRepository handles database operations for safety metrics
type SafetyMetricRepository struct {
	db *gorm.DB
}

// NewSafetyMetricRepository creates a new safety metric repository
func NewSafetyMetricRepository(db *gorm.DB) *SafetyMetricRepository {
	return &SafetyMetricRepository{db: db}
}

// Create creates a new safety metric
func (r *SafetyMetricRepository) Create(metric *models.SafetyMetric) error {
	return r.db.Omit(clause.Associations).Create(metric).Error
}

// GetByID retrieves a safety metric by ID
func (r *SafetyMetricRepository) GetByID(id uuid.UUID) (*models.SafetyMetric, error) {
	var metric models.SafetyMetric
	err := r.db.First(&metric, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

// GetByPeriodAndCoach retrieves the metric for one coach in one period
func (r *SafetyMetricRepository) GetByPeriodAndCoach(periodID, coachID uuid.UUID) (*models.SafetyMetric, error) {
	var metric models.SafetyMetric
	err := r.db.First(&metric, "period_id = ? AND coach_id = ?", periodID, coachID).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

// GetAll retrieves every safety metric in creation order
func (r *SafetyMetricRepository) GetAll() ([]models.SafetyMetric, error) {
	var metrics []models.SafetyMetric
	err := r.db.Order("created_at ASC, id ASC").Find(&metrics).Error
	return metrics, err
}

// GetByPeriodID retrieves the metrics of one period in creation order
func (r *SafetyMetricRepository) GetByPeriodID(periodID uuid.UUID) ([]models.SafetyMetric, error) {
	var metrics []models.SafetyMetric
	err := r.db.Where("period_id = ?", periodID).Order("created_at ASC, id ASC").Find(&metrics).Error
	return metrics, err
}

// CountByPeriodID counts the metrics referencing a period
func (r *SafetyMetricRepository) CountByPeriodID(periodID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.SafetyMetric{}).Where("period_id = ?", periodID).Count(&count).Error
	return count, err
}

// Update updates a safety metric
func (r *SafetyMetricRepository) Update(metric *models.SafetyMetric) error {
	return r.db.Omit(clause.Associations).Save(metric).Error
}
