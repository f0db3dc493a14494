package repository

import (
	"time"

	"safety-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodRepository handles database operations for bi-weekly periods
type PeriodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository
func NewPeriodRepository(db *gorm.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

// Create creates a new period
func (r *PeriodRepository) Create(period *models.BiWeeklyPeriod) error {
	return r.db.Create(period).Error
}

// GetByID retrieves a period by ID
func (r *PeriodRepository) GetByID(id uuid.UUID) (*models.BiWeeklyPeriod, error) {
	var period models.BiWeeklyPeriod
	err := r.db.First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetByRange retrieves the period covering exactly [start, end)
func (r *PeriodRepository) GetByRange(start, end time.Time) (*models.BiWeeklyPeriod, error) {
	var period models.BiWeeklyPeriod
	err := r.db.First(&period, "start_date = ? AND end_date = ?", start, end).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetAll retrieves every period in creation order
func (r *PeriodRepository) GetAll() ([]models.BiWeeklyPeriod, error) {
	var periods []models.BiWeeklyPeriod
	err := r.db.Order("created_at ASC, id ASC").Find(&periods).Error
	return periods, err
}

// GetOverlapping retrieves periods sharing any day with [start, end), optionally excluding one period
func (r *PeriodRepository) GetOverlapping(start, end time.Time, excludeID *uuid.UUID) ([]models.BiWeeklyPeriod, error) {
	var periods []models.BiWeeklyPeriod
	query := r.db.Where("start_date < ? AND ? < end_date", end, start)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Order("start_date ASC").Find(&periods).Error
	return periods, err
}

// Update updates a period
func (r *PeriodRepository) Update(period *models.BiWeeklyPeriod) error {
	return r.db.Save(period).Error
}

// Delete deletes a period
func (r *PeriodRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BiWeeklyPeriod{}, "id = ?", id).Error
}
