package reconcile_test

import (
	"errors"
	"testing"
	"time"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/database/models"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/mocks"
	"safety-tracker-backend/internal/reconcile"
	"safety-tracker-backend/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardTestSuite struct {
	suite.Suite
	store    *store.Memory
	engine   *reconcile.Engine
	identity auth.Identity
}

func (suite *DashboardTestSuite) SetupTest() {
	suite.store = store.NewMemory()
	suite.engine = reconcile.NewEngine(suite.store, quietLogger())
	suite.identity = auth.NewIdentity("editor@example.com")
}

func (suite *DashboardTestSuite) savePeriod(start, end time.Time) *models.BiWeeklyPeriod {
	period := &models.BiWeeklyPeriod{StartDate: start, EndDate: end}
	suite.Require().NoError(suite.engine.SavePeriod(suite.identity, period))
	return period
}

func (suite *DashboardTestSuite) saveCoach(name string) *models.Coach {
	coach := &models.Coach{Name: name}
	suite.Require().NoError(suite.engine.SaveCoach(suite.identity, coach))
	return coach
}

func (suite *DashboardTestSuite) TestWritesRequireIdentity() {
	anonymous := auth.Identity{}

	suite.ErrorIs(suite.engine.SavePeriod(anonymous, &models.BiWeeklyPeriod{}), apperrors.ErrUnauthorized)
	suite.ErrorIs(suite.engine.SaveCoach(anonymous, &models.Coach{Name: "Ana"}), apperrors.ErrUnauthorized)
	suite.ErrorIs(suite.engine.SaveMetric(anonymous, &models.SafetyMetric{}), apperrors.ErrUnauthorized)
	suite.ErrorIs(suite.engine.DeletePeriod(anonymous, uuid.New()), apperrors.ErrUnauthorized)

	periods, err := suite.store.ListPeriods()
	suite.Require().NoError(err)
	suite.Empty(periods)
}

func (suite *DashboardTestSuite) TestSavePeriod() {
	period := suite.savePeriod(date(time.January, 1), date(time.January, 15))

	suite.NotEqual(uuid.Nil, period.ID)
	suite.Equal("editor@example.com", period.CreatedBy)
	suite.Equal("editor@example.com", period.UpdatedBy)

	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		err   error
	}{
		{name: "abutting range", start: date(time.January, 15), end: date(time.January, 29)},
		{name: "same range", start: date(time.January, 1), end: date(time.January, 15), err: apperrors.ErrPeriodExists},
		{name: "overlapping range", start: date(time.January, 14), end: date(time.January, 20), err: apperrors.ErrPeriodOverlap},
		{name: "empty range", start: date(time.March, 1), end: date(time.March, 1), err: apperrors.ErrInvalidDateRange},
		{name: "reversed range", start: date(time.March, 15), end: date(time.March, 1), err: apperrors.ErrInvalidDateRange},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.engine.SavePeriod(suite.identity, &models.BiWeeklyPeriod{StartDate: tc.start, EndDate: tc.end})
			if tc.err == nil {
				suite.NoError(err)
				return
			}
			suite.ErrorIs(err, tc.err)
		})
	}
}

func (suite *DashboardTestSuite) TestSavePeriod_UpdateOwnRange() {
	period := suite.savePeriod(date(time.January, 1), date(time.January, 15))

	period.EndDate = date(time.January, 14)
	period.DisplayName = "Jan 1-13"
	suite.NoError(suite.engine.SavePeriod(auth.NewIdentity("other@example.com"), period))

	stored, err := suite.store.GetPeriod(period.ID)
	suite.Require().NoError(err)
	suite.Equal("Jan 1-13", stored.DisplayName)
	suite.Equal("editor@example.com", stored.CreatedBy)
	suite.Equal("other@example.com", stored.UpdatedBy)
}

func (suite *DashboardTestSuite) TestSaveCoach() {
	coach := &models.Coach{Name: "  José   Smith ", VacationDaysRemaining: 8, VacationDaysTotal: 10}
	suite.Require().NoError(suite.engine.SaveCoach(suite.identity, coach))

	suite.Equal("José Smith", coach.Name)
	suite.Equal("jose smith", coach.NameKey)
	suite.True(coach.BalancesConfirmed)

	suite.ErrorIs(suite.engine.SaveCoach(suite.identity, &models.Coach{Name: "JOSE SMITH"}), apperrors.ErrCoachExists)
	suite.True(apperrors.IsValidation(suite.engine.SaveCoach(suite.identity, &models.Coach{Name: "   "})))
	suite.ErrorIs(suite.engine.SaveCoach(suite.identity, &models.Coach{Name: "Ana", VacationDaysRemaining: 3, VacationDaysTotal: 2}), apperrors.ErrInvalidBalance)
	suite.ErrorIs(suite.engine.SaveCoach(suite.identity, &models.Coach{Name: "Ana", VacationDaysRemaining: -1}), apperrors.ErrInvalidBalance)

	// Renaming a coach to its own key is not a conflict
	coach.Name = "Jose Smith"
	suite.NoError(suite.engine.SaveCoach(suite.identity, coach))
}

func (suite *DashboardTestSuite) TestSaveMetric_UpsertsByNaturalKey() {
	period := suite.savePeriod(date(time.January, 1), date(time.January, 15))
	coach := suite.saveCoach("Ana")

	first := &models.SafetyMetric{PeriodID: period.ID, CoachID: coach.ID, SiteSafetyEvaluations: 1}
	suite.Require().NoError(suite.engine.SaveMetric(suite.identity, first))

	second := &models.SafetyMetric{PeriodID: period.ID, CoachID: coach.ID, SiteSafetyEvaluations: 4, Notes: "edited"}
	suite.Require().NoError(suite.engine.SaveMetric(auth.NewIdentity("other@example.com"), second))

	suite.Equal(first.ID, second.ID)
	metrics, err := suite.store.ListMetrics(&period.ID)
	suite.Require().NoError(err)
	suite.Require().Len(metrics, 1)
	suite.Equal(4, metrics[0].SiteSafetyEvaluations)
	suite.Equal("edited", metrics[0].Notes)
	suite.Equal("editor@example.com", metrics[0].CreatedBy)
	suite.Equal("other@example.com", metrics[0].UpdatedBy)
}

func (suite *DashboardTestSuite) TestSaveMetric_Rejections() {
	period := suite.savePeriod(date(time.January, 1), date(time.January, 15))
	coach := suite.saveCoach("Ana")

	negative := &models.SafetyMetric{PeriodID: period.ID, CoachID: coach.ID, OpenInvestigationsAuto: -1}
	suite.ErrorIs(suite.engine.SaveMetric(suite.identity, negative), apperrors.ErrNegativeCount)

	unknownPeriod := &models.SafetyMetric{PeriodID: uuid.New(), CoachID: coach.ID}
	suite.ErrorIs(suite.engine.SaveMetric(suite.identity, unknownPeriod), apperrors.ErrPeriodNotFound)

	unknownCoach := &models.SafetyMetric{PeriodID: period.ID, CoachID: uuid.New()}
	suite.ErrorIs(suite.engine.SaveMetric(suite.identity, unknownCoach), apperrors.ErrCoachNotFound)

	suite.Require().NoError(suite.engine.SaveMetric(suite.identity, &models.SafetyMetric{PeriodID: period.ID, CoachID: coach.ID}))
	conflicting := &models.SafetyMetric{BaseModel: models.BaseModel{ID: uuid.New()}, PeriodID: period.ID, CoachID: coach.ID}
	suite.ErrorIs(suite.engine.SaveMetric(suite.identity, conflicting), apperrors.ErrDuplicateMetricKey)
}

func (suite *DashboardTestSuite) TestDeletePeriod() {
	used := suite.savePeriod(date(time.January, 1), date(time.January, 15))
	unused := suite.savePeriod(date(time.January, 15), date(time.January, 29))
	coach := suite.saveCoach("Ana")
	suite.Require().NoError(suite.engine.SaveMetric(suite.identity, &models.SafetyMetric{PeriodID: used.ID, CoachID: coach.ID}))

	suite.ErrorIs(suite.engine.DeletePeriod(suite.identity, used.ID), apperrors.ErrPeriodInUse)
	suite.NoError(suite.engine.DeletePeriod(suite.identity, unused.ID))
	suite.ErrorIs(suite.engine.DeletePeriod(suite.identity, unused.ID), apperrors.ErrPeriodNotFound)
}

func TestDashboardTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}

func TestSavePeriod_ExcludesItselfFromOverlapQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	engine := reconcile.NewEngine(st, quietLogger())

	period := &models.BiWeeklyPeriod{StartDate: date(time.January, 1), EndDate: date(time.January, 14)}
	period.ID = uuid.New()

	st.EXPECT().FindPeriodByRange(period.StartDate, period.EndDate).Return(nil, apperrors.ErrPeriodNotFound)
	st.EXPECT().FindOverlappingPeriods(period.StartDate, period.EndDate, &period.ID).Return(nil, nil)
	st.EXPECT().UpsertPeriod(period).Return(nil)

	assert.NoError(t, engine.SavePeriod(auth.NewIdentity("editor@example.com"), period))
}

func TestSaveCoach_LookupFailureIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	engine := reconcile.NewEngine(st, quietLogger())

	st.EXPECT().FindCoachByKey("ana lopez").Return(nil, errors.New("connection reset"))

	err := engine.SaveCoach(auth.NewIdentity("editor@example.com"), &models.Coach{Name: "Ana Lopez"})
	assert.ErrorContains(t, err, "connection reset")
}
