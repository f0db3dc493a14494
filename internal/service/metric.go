package service

import (
	"fmt"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/database/models"
	"safety-tracker-backend/internal/normalize"
	"safety-tracker-backend/internal/reconcile"
	"safety-tracker-backend/internal/store"
	"safety-tracker-backend/internal/workbook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MetricService handles business logic for safety metrics
type MetricService struct {
	store     store.Store
	engine    *reconcile.Engine
	validator *validator.Validate
}

// NewMetricService creates a new safety metric service
func NewMetricService(st store.Store, engine *reconcile.Engine, validator *validator.Validate) *MetricService {
	return &MetricService{
		store:     st,
		engine:    engine,
		validator: validator,
	}
}

// MetricRequest represents a dashboard edit of one coach's metrics in one period.
// Date-or-status fields take a date in any common layout or a short status such as "N/A".
type MetricRequest struct {
	TravelPlans      string `json:"travel_plans" validate:"max=2000"`
	TrainingLocation string `json:"training_location" validate:"max=500"`

	SiteSafetyEvaluations      int `json:"site_safety_evaluations" validate:"min=0"`
	ForensicSurveyAudits       int `json:"forensic_survey_audits" validate:"min=0"`
	WarehouseSafetyAudits      int `json:"warehouse_safety_audits" validate:"min=0"`
	OpenInvestigationsInjuries int `json:"open_investigations_injuries" validate:"min=0"`
	OpenInvestigationsAuto     int `json:"open_investigations_auto" validate:"min=0"`
	OpenInvestigationsProperty int `json:"open_investigations_property_damage" validate:"min=0"`
	OpenInvestigationsNearMiss int `json:"open_investigations_near_miss" validate:"min=0"`

	HRPartnershipMeeting    *string `json:"hr_partnership_meeting" validate:"omitempty,max=50"`
	WHSPartnershipMeeting   *string `json:"whs_partnership_meeting" validate:"omitempty,max=50"`
	LMSReportDate           *string `json:"lms_report_date" validate:"omitempty,max=50"`
	TBTAttendanceReportDate *string `json:"tbt_attendance_report_date" validate:"omitempty,max=50"`

	Notes string `json:"notes" validate:"max=5000"`
}

// MetricResponse represents one stored safety metric
type MetricResponse struct {
	models.SafetyMetric
	CoachName string `json:"coach_name"`
}

// MetricListResponse represents the metrics of one period
type MetricListResponse struct {
	Period  PeriodResponse   `json:"period"`
	Metrics []MetricResponse `json:"metrics"`
	Total   int              `json:"total"`
}

// ListByPeriod returns the metrics recorded for a period
func (s *MetricService) ListByPeriod(periodID uuid.UUID) (*MetricListResponse, error) {
	period, err := s.store.GetPeriod(periodID)
	if err != nil {
		return nil, err
	}
	metrics, err := s.store.ListMetrics(&periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get safety metrics: %w", err)
	}
	coaches, err := s.store.ListCoaches()
	if err != nil {
		return nil, fmt.Errorf("failed to get coaches: %w", err)
	}

	names := make(map[uuid.UUID]string, len(coaches))
	for _, c := range coaches {
		names[c.ID] = c.Name
	}

	responses := make([]MetricResponse, len(metrics))
	for i := range metrics {
		metrics[i].Period = nil
		metrics[i].Coach = nil
		responses[i] = MetricResponse{SafetyMetric: metrics[i], CoachName: names[metrics[i].CoachID]}
	}
	return &MetricListResponse{Period: *toPeriodResponse(period), Metrics: responses, Total: len(responses)}, nil
}

// Upsert stores the metric of a coach in a period, replacing any previous record for that pair
func (s *MetricService) Upsert(identity auth.Identity, periodID, coachID uuid.UUID, req *MetricRequest) (*MetricResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	metric := &models.SafetyMetric{
		PeriodID:                   periodID,
		CoachID:                    coachID,
		TravelPlans:                req.TravelPlans,
		TrainingLocation:           req.TrainingLocation,
		SiteSafetyEvaluations:      req.SiteSafetyEvaluations,
		ForensicSurveyAudits:       req.ForensicSurveyAudits,
		WarehouseSafetyAudits:      req.WarehouseSafetyAudits,
		OpenInvestigationsInjuries: req.OpenInvestigationsInjuries,
		OpenInvestigationsAuto:     req.OpenInvestigationsAuto,
		OpenInvestigationsProperty: req.OpenInvestigationsProperty,
		OpenInvestigationsNearMiss: req.OpenInvestigationsNearMiss,
		HRPartnershipMeeting:       dateOrStatus(req.HRPartnershipMeeting),
		WHSPartnershipMeeting:      dateOrStatus(req.WHSPartnershipMeeting),
		LMSReportDate:              dateOrStatus(req.LMSReportDate),
		TBTAttendanceReportDate:    dateOrStatus(req.TBTAttendanceReportDate),
		Notes:                      req.Notes,
	}
	if err := s.engine.SaveMetric(identity, metric); err != nil {
		return nil, err
	}

	resp := &MetricResponse{SafetyMetric: *metric}
	if coach, err := s.store.GetCoach(coachID); err == nil {
		resp.CoachName = coach.Name
	}
	return resp, nil
}

// dateOrStatus stores dates as YYYY-MM-DD, other text trimmed, and blanks as nil
func dateOrStatus(value *string) *string {
	if value == nil {
		return nil
	}
	normalized, ok := normalize.ParseDateOrStatus(workbook.TextCell(*value))
	if !ok {
		return nil
	}
	return &normalized
}
