package service_test

import (
	"testing"

	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/service"
	"safety-tracker-backend/internal/store"
	"safety-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CoachServiceTestSuite struct {
	suite.Suite
	store        *store.Memory
	coachService *service.CoachService
}

func (suite *CoachServiceTestSuite) SetupTest() {
	suite.store = store.NewMemory()
	suite.coachService = service.NewCoachService(suite.store, quietEngine(suite.store), service.NewValidator())
}

func (suite *CoachServiceTestSuite) TestCreate_Success() {
	resp, err := suite.coachService.Create(editor, &service.CoachRequest{
		Name:                  "  Jane   Doe ",
		HireDate:              strPtr("2021-06-01"),
		VacationDaysRemaining: 4,
		VacationDaysTotal:     10,
	})
	suite.Require().NoError(err)

	suite.NotEqual(uuid.Nil, resp.ID)
	suite.Equal("Jane Doe", resp.Name)
	suite.Require().NotNil(resp.HireDate)
	suite.Equal("2021-06-01", *resp.HireDate)
	suite.Equal(4, resp.VacationDaysRemaining)
	suite.Equal(10, resp.VacationDaysTotal)
	suite.True(resp.BalancesConfirmed)
	suite.Equal("editor@example.com", resp.UpdatedBy)
}

func (suite *CoachServiceTestSuite) TestCreate_Errors() {
	_, err := suite.coachService.Create(editor, &service.CoachRequest{Name: "José Smith"})
	suite.Require().NoError(err)

	testCases := []struct {
		name    string
		req     service.CoachRequest
		field   string
		wantErr error
	}{
		{name: "missing name", req: service.CoachRequest{}, field: "name"},
		{name: "bad hire date", req: service.CoachRequest{Name: "A", HireDate: strPtr("June 1")}, field: "hire_date"},
		{name: "negative remaining", req: service.CoachRequest{Name: "A", VacationDaysRemaining: -1}, field: "vacation_days_remaining"},
		{name: "remaining above total", req: service.CoachRequest{Name: "A", VacationDaysRemaining: 6, VacationDaysTotal: 5}, field: "vacation_days_total"},
		{name: "whitespace name", req: service.CoachRequest{Name: "   "}, field: "name"},
		{name: "same name folded", req: service.CoachRequest{Name: "jose  SMITH"}, wantErr: apperrors.ErrCoachExists},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := tc.req
			_, err := suite.coachService.Create(editor, &req)
			suite.Require().Error(err)
			if tc.wantErr != nil {
				suite.ErrorIs(err, tc.wantErr)
				return
			}
			var validationErr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Equal(tc.field, validationErr.Field)
		})
	}
}

func (suite *CoachServiceTestSuite) TestUpdate_ConfirmsBalances() {
	coach := testutils.NewCoachFactory().WithName("Jordan Smith")
	suite.Require().NoError(suite.store.UpsertCoach(coach))

	resp, err := suite.coachService.Update(lead, coach.ID, &service.CoachRequest{
		Name:                  "Jordan Smith",
		VacationDaysRemaining: 0,
		VacationDaysTotal:     0,
	})
	suite.Require().NoError(err)
	suite.True(resp.BalancesConfirmed)
	suite.Nil(resp.HireDate)

	stored, err := suite.store.GetCoach(coach.ID)
	suite.Require().NoError(err)
	suite.False(stored.BalancesUnset())
	suite.Equal("lead@example.com", stored.UpdatedBy)
}

func (suite *CoachServiceTestSuite) TestUpdate_Rename() {
	first, err := suite.coachService.Create(editor, &service.CoachRequest{Name: "Jane Doe"})
	suite.Require().NoError(err)
	_, err = suite.coachService.Create(editor, &service.CoachRequest{Name: "John Roe"})
	suite.Require().NoError(err)

	_, err = suite.coachService.Update(editor, first.ID, &service.CoachRequest{Name: "John Roe"})
	suite.ErrorIs(err, apperrors.ErrCoachExists)

	renamed, err := suite.coachService.Update(editor, first.ID, &service.CoachRequest{Name: "Jane Doe-Roe"})
	suite.Require().NoError(err)
	suite.Equal(first.ID, renamed.ID)
	suite.Equal("Jane Doe-Roe", renamed.Name)
}

func (suite *CoachServiceTestSuite) TestUpdate_NotFound() {
	_, err := suite.coachService.Update(editor, uuid.New(), &service.CoachRequest{Name: "Nobody"})
	suite.ErrorIs(err, apperrors.ErrCoachNotFound)
}

func (suite *CoachServiceTestSuite) TestCreate_Unauthorized() {
	_, err := suite.coachService.Create(anonymous, &service.CoachRequest{Name: "Jane Doe"})
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *CoachServiceTestSuite) TestListAndGet() {
	created, err := suite.coachService.Create(editor, &service.CoachRequest{Name: "Jane Doe"})
	suite.Require().NoError(err)
	_, err = suite.coachService.Create(editor, &service.CoachRequest{Name: "Ana Lopez"})
	suite.Require().NoError(err)

	list, err := suite.coachService.List()
	suite.Require().NoError(err)
	suite.Require().Equal(2, list.Total)
	suite.Equal("Jane Doe", list.Coaches[0].Name)
	suite.Equal("Ana Lopez", list.Coaches[1].Name)

	got, err := suite.coachService.GetByID(created.ID)
	suite.Require().NoError(err)
	suite.Equal("Jane Doe", got.Name)
}

func TestCoachServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoachServiceTestSuite))
}
