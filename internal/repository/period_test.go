//go:build integration
// +build integration

package repository

import (
	"testing"

	"safety-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PeriodRepositoryTestSuite tests the PeriodRepository
type PeriodRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PeriodRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PeriodRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPeriodRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PeriodRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PeriodRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PeriodRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new period
func (suite *PeriodRepositoryTestSuite) TestCreate() {
	period := suite.factories.Period.Create()

	err := suite.repo.Create(period)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, period.ID)
	suite.NotZero(period.CreatedAt)
}

// TestCreateDuplicateRange tests the unique (start, end) index
func (suite *PeriodRepositoryTestSuite) TestCreateDuplicateRange() {
	suite.NoError(suite.repo.Create(suite.factories.Period.Create()))

	err := suite.repo.Create(suite.factories.Period.Create())

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByRange tests exact range lookup
func (suite *PeriodRepositoryTestSuite) TestGetByRange() {
	period := suite.factories.Period.Create()
	suite.Require().NoError(suite.repo.Create(period))

	found, err := suite.repo.GetByRange(period.StartDate, period.EndDate)
	suite.NoError(err)
	suite.Equal(period.ID, found.ID)
	suite.True(found.SameRange(period.StartDate, period.EndDate))

	_, err = suite.repo.GetByRange(period.StartDate, period.EndDate.AddDate(0, 0, 1))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetOverlapping tests that abutting periods do not overlap
func (suite *PeriodRepositoryTestSuite) TestGetOverlapping() {
	periods := suite.factories.Period.Sequence(testutils.Date(2024, 1, 1), 3)
	for _, p := range periods {
		suite.Require().NoError(suite.repo.Create(p))
	}

	// Jan 15 - Jan 29 exactly abuts the first and third periods
	overlapping, err := suite.repo.GetOverlapping(testutils.Date(2024, 1, 15), testutils.Date(2024, 1, 29), &periods[1].ID)
	suite.NoError(err)
	suite.Empty(overlapping)

	overlapping, err = suite.repo.GetOverlapping(testutils.Date(2024, 1, 10), testutils.Date(2024, 1, 20), nil)
	suite.NoError(err)
	suite.Len(overlapping, 2)
	suite.Equal(periods[0].ID, overlapping[0].ID)
	suite.Equal(periods[1].ID, overlapping[1].ID)
}

// TestGetAllOrderedByCreation tests listing order
func (suite *PeriodRepositoryTestSuite) TestGetAllOrderedByCreation() {
	later := suite.factories.Period.WithRange(testutils.Date(2024, 2, 1), testutils.Date(2024, 2, 15))
	earlier := suite.factories.Period.WithRange(testutils.Date(2024, 1, 1), testutils.Date(2024, 1, 15))
	suite.Require().NoError(suite.repo.Create(later))
	suite.Require().NoError(suite.repo.Create(earlier))

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(later.ID, all[0].ID)
	suite.Equal(earlier.ID, all[1].ID)
}

// TestUpdateAndDelete tests saving changes and removing a period
func (suite *PeriodRepositoryTestSuite) TestUpdateAndDelete() {
	period := suite.factories.Period.Create()
	suite.Require().NoError(suite.repo.Create(period))

	period.DisplayName = "Renamed"
	suite.NoError(suite.repo.Update(period))

	found, err := suite.repo.GetByID(period.ID)
	suite.NoError(err)
	suite.Equal("Renamed", found.DisplayName)

	suite.NoError(suite.repo.Delete(period.ID))
	_, err = suite.repo.GetByID(period.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestPeriodRepositoryTestSuite runs the test suite
func TestPeriodRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodRepositoryTestSuite))
}
