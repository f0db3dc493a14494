package store_test

import (
	"errors"
	"testing"
	"time"

	"safety-tracker-backend/internal/database/models"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/mocks"
	"safety-tracker-backend/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DatabaseStoreTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	periods *mocks.MockPeriodRepositoryInterface
	coaches *mocks.MockCoachRepositoryInterface
	metrics *mocks.MockSafetyMetricRepositoryInterface
	store   *store.DatabaseStore
}

func (suite *DatabaseStoreTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.periods = mocks.NewMockPeriodRepositoryInterface(suite.ctrl)
	suite.coaches = mocks.NewMockCoachRepositoryInterface(suite.ctrl)
	suite.metrics = mocks.NewMockSafetyMetricRepositoryInterface(suite.ctrl)
	suite.store = store.NewDatabaseStore(suite.periods, suite.coaches, suite.metrics)
}

func (suite *DatabaseStoreTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DatabaseStoreTestSuite) TestListMetrics_ByPeriod() {
	periodID := uuid.New()
	suite.metrics.EXPECT().GetByPeriodID(periodID).Return([]models.SafetyMetric{{PeriodID: periodID}}, nil)

	metrics, err := suite.store.ListMetrics(&periodID)
	suite.NoError(err)
	suite.Len(metrics, 1)
}

func (suite *DatabaseStoreTestSuite) TestListMetrics_All() {
	suite.metrics.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

	_, err := suite.store.ListMetrics(nil)
	suite.Error(err)
	suite.Contains(err.Error(), "connection refused")
}

func (suite *DatabaseStoreTestSuite) TestGetPeriod_NotFound() {
	id := uuid.New()
	suite.periods.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.store.GetPeriod(id)
	suite.ErrorIs(err, apperrors.ErrPeriodNotFound)
}

func (suite *DatabaseStoreTestSuite) TestUpsertPeriod_CreateDuplicate() {
	period := &models.BiWeeklyPeriod{StartDate: time.Now(), EndDate: time.Now().Add(time.Hour)}
	suite.periods.EXPECT().Create(period).Return(gorm.ErrDuplicatedKey)

	suite.ErrorIs(suite.store.UpsertPeriod(period), apperrors.ErrPeriodExists)
}

func (suite *DatabaseStoreTestSuite) TestUpsertCoach_UpdateKeepsCreationAudit() {
	id := uuid.New()
	created := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	stored := &models.Coach{BaseModel: models.BaseModel{ID: id, CreatedAt: created, CreatedBy: "importer@example.com"}, Name: "Ana"}
	update := &models.Coach{BaseModel: models.BaseModel{ID: id, UpdatedBy: "editor@example.com"}, Name: "Ana Lopez"}

	suite.coaches.EXPECT().GetByID(id).Return(stored, nil)
	suite.coaches.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.Coach) error {
		assert.Equal(suite.T(), created, c.CreatedAt)
		assert.Equal(suite.T(), "importer@example.com", c.CreatedBy)
		assert.Equal(suite.T(), "editor@example.com", c.UpdatedBy)
		return nil
	})

	suite.NoError(suite.store.UpsertCoach(update))
}

func (suite *DatabaseStoreTestSuite) TestUpsertCoach_UpdateMissing() {
	id := uuid.New()
	suite.coaches.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.store.UpsertCoach(&models.Coach{BaseModel: models.BaseModel{ID: id}, Name: "Ana"})
	suite.ErrorIs(err, apperrors.ErrCoachNotFound)
}

func (suite *DatabaseStoreTestSuite) TestUpsertMetric_Errors() {
	metric := &models.SafetyMetric{PeriodID: uuid.New(), CoachID: uuid.New()}

	suite.metrics.EXPECT().Create(metric).Return(gorm.ErrDuplicatedKey)
	suite.ErrorIs(suite.store.UpsertMetric(metric), apperrors.ErrDuplicateMetricKey)

	suite.metrics.EXPECT().Create(metric).Return(gorm.ErrForeignKeyViolated)
	suite.True(apperrors.IsValidation(suite.store.UpsertMetric(metric)))
}

func (suite *DatabaseStoreTestSuite) TestFindMetric_NotFound() {
	periodID, coachID := uuid.New(), uuid.New()
	suite.metrics.EXPECT().GetByPeriodAndCoach(periodID, coachID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.store.FindMetric(periodID, coachID)
	suite.ErrorIs(err, apperrors.ErrMetricNotFound)
}

func (suite *DatabaseStoreTestSuite) TestDeletePeriod_InUse() {
	id := uuid.New()
	suite.periods.EXPECT().GetByID(id).Return(&models.BiWeeklyPeriod{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.metrics.EXPECT().CountByPeriodID(id).Return(int64(3), nil)

	suite.ErrorIs(suite.store.DeletePeriod(id), apperrors.ErrPeriodInUse)
}

func (suite *DatabaseStoreTestSuite) TestDeletePeriod_Success() {
	id := uuid.New()
	suite.periods.EXPECT().GetByID(id).Return(&models.BiWeeklyPeriod{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.metrics.EXPECT().CountByPeriodID(id).Return(int64(0), nil)
	suite.periods.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.store.DeletePeriod(id))
}

func (suite *DatabaseStoreTestSuite) TestFindPeriodByRange_NotFound() {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	suite.periods.EXPECT().GetByRange(start, end).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.store.FindPeriodByRange(start, end)
	suite.ErrorIs(err, apperrors.ErrPeriodNotFound)
}

func (suite *DatabaseStoreTestSuite) TestFindOverlappingPeriods() {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	exclude := uuid.New()
	suite.periods.EXPECT().GetOverlapping(start, end, &exclude).Return([]models.BiWeeklyPeriod{{StartDate: start.AddDate(0, 0, 7)}}, nil)

	periods, err := suite.store.FindOverlappingPeriods(start, end, &exclude)
	suite.NoError(err)
	suite.Len(periods, 1)

	suite.periods.EXPECT().GetOverlapping(start, end, nil).Return(nil, errors.New("connection refused"))
	_, err = suite.store.FindOverlappingPeriods(start, end, nil)
	suite.ErrorContains(err, "failed to check period overlap")
}

func (suite *DatabaseStoreTestSuite) TestFindCoachByKey() {
	suite.coaches.EXPECT().GetByNameKey("ana lopez").Return(&models.Coach{Name: "Ana López", NameKey: "ana lopez"}, nil)
	suite.coaches.EXPECT().GetByNameKey("ana").Return(nil, gorm.ErrRecordNotFound)

	coach, err := suite.store.FindCoachByKey("ana lopez")
	suite.Require().NoError(err)
	suite.Equal("Ana López", coach.Name)

	_, err = suite.store.FindCoachByKey("ana")
	suite.ErrorIs(err, apperrors.ErrCoachNotFound)
}

func TestDatabaseStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DatabaseStoreTestSuite))
}
