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

// CoachRepositoryTestSuite tests the CoachRepository
type CoachRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CoachRepository
	factories     *testutils.FactorySet
}

func (suite *CoachRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCoachRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *CoachRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CoachRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *CoachRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new coach
func (suite *CoachRepositoryTestSuite) TestCreate() {
	coach := suite.factories.Coach.WithBalances("Jordan Smith", 8, 10)

	err := suite.repo.Create(coach)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, coach.ID)

	found, err := suite.repo.GetByID(coach.ID)
	suite.NoError(err)
	suite.Equal(8, found.VacationDaysRemaining)
	suite.Equal(10, found.VacationDaysTotal)
	suite.True(found.BalancesConfirmed)
	suite.Nil(found.HireDate)
}

// TestCreateDuplicateNameKey tests that the normalized name is unique
func (suite *CoachRepositoryTestSuite) TestCreateDuplicateNameKey() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Coach.WithName("José Smith")))

	err := suite.repo.Create(suite.factories.Coach.WithName("  jose   SMITH"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByNameKey tests lookup by normalized name
func (suite *CoachRepositoryTestSuite) TestGetByNameKey() {
	coach := suite.factories.Coach.WithName("J. Smith")
	suite.Require().NoError(suite.repo.Create(coach))

	found, err := suite.repo.GetByNameKey("j. smith")
	suite.NoError(err)
	suite.Equal(coach.ID, found.ID)
	suite.Equal("J. Smith", found.Name)

	_, err = suite.repo.GetByNameKey("k. smith")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdate tests saving hire date and balances
func (suite *CoachRepositoryTestSuite) TestUpdate() {
	coach := suite.factories.Coach.Create()
	suite.Require().NoError(suite.repo.Create(coach))

	hired := testutils.Date(2019, 3, 4)
	coach.HireDate = &hired
	coach.VacationDaysTotal = 15
	suite.NoError(suite.repo.Update(coach))

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Require().Len(all, 1)
	suite.Require().NotNil(all[0].HireDate)
	suite.True(all[0].HireDate.Equal(hired))
	suite.Equal(15, all[0].VacationDaysTotal)
}

func TestCoachRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CoachRepositoryTestSuite))
}
