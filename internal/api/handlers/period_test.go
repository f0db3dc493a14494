package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"safety-tracker-backend/internal/api/handlers"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/mocks"
	"safety-tracker-backend/internal/service"
	"safety-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PeriodHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	periodService *mocks.MockPeriodServiceInterface
	http          *testutils.HTTPTestSuite
}

func (suite *PeriodHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.periodService = mocks.NewMockPeriodServiceInterface(suite.ctrl)
	handler := handlers.NewPeriodHandler(suite.periodService)

	suite.http = newAuthenticatedHTTP(suite.T())
	suite.http.Router.GET("/periods", handler.ListPeriods)
	suite.http.Router.POST("/periods", handler.CreatePeriod)
	suite.http.Router.GET("/periods/:id", handler.GetPeriod)
	suite.http.Router.PUT("/periods/:id", handler.UpdatePeriod)
	suite.http.Router.DELETE("/periods/:id", handler.DeletePeriod)
}

func (suite *PeriodHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PeriodHandlerTestSuite) TestListPeriods() {
	suite.periodService.EXPECT().List().Return(&service.PeriodListResponse{
		Periods: []service.PeriodResponse{{ID: uuid.New(), StartDate: "2024-01-01", EndDate: "2024-01-15"}},
		Total:   1,
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/periods", nil)

	var got service.PeriodListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(1, got.Total)
	suite.Equal("2024-01-01", got.Periods[0].StartDate)
}

func (suite *PeriodHandlerTestSuite) TestListPeriods_InternalErrorIsNotEchoed() {
	suite.periodService.EXPECT().List().Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	w := suite.http.MakeRequest(http.MethodGet, "/periods", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to get periods")
	suite.NotContains(w.Body.String(), "10.0.0.5")
}

func (suite *PeriodHandlerTestSuite) TestCreatePeriod_ForwardsIdentity() {
	req := service.PeriodRequest{StartDate: "2024-01-01", EndDate: "2024-01-15", DisplayName: "Jan 1-14"}
	suite.periodService.EXPECT().Create(editor, &req).Return(&service.PeriodResponse{ID: uuid.New(), DisplayName: "Jan 1-14"}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/periods", req)

	var got service.PeriodResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Equal("Jan 1-14", got.DisplayName)
}

func (suite *PeriodHandlerTestSuite) TestCreatePeriod_ErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: apperrors.NewValidationError("start_date", "is required"), status: http.StatusBadRequest},
		{name: "range", err: apperrors.ErrInvalidDateRange, status: http.StatusBadRequest},
		{name: "overlap", err: apperrors.ErrPeriodOverlap, status: http.StatusBadRequest},
		{name: "duplicate", err: apperrors.ErrPeriodExists, status: http.StatusConflict},
		{name: "unauthorized", err: apperrors.ErrUnauthorized, status: http.StatusUnauthorized},
		{name: "wrapped store failure", err: fmt.Errorf("upsert: %w", errors.New("disk full")), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.periodService.EXPECT().Create(editor, gomock.Any()).Return(nil, tc.err)

			w := suite.http.MakeRequest(http.MethodPost, "/periods", service.PeriodRequest{StartDate: "2024-01-01", EndDate: "2024-01-15"})

			suite.Equal(tc.status, w.Code)
		})
	}
}

func (suite *PeriodHandlerTestSuite) TestCreatePeriod_ValidationReportsField() {
	suite.periodService.EXPECT().Create(editor, gomock.Any()).Return(nil, apperrors.NewValidationError("end_date", "is required"))

	w := suite.http.MakeRequest(http.MethodPost, "/periods", service.PeriodRequest{StartDate: "2024-01-01"})

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &got)
	suite.Equal("end_date", got.Field)
}

func (suite *PeriodHandlerTestSuite) TestCreatePeriod_MalformedBody() {
	w := suite.http.MakeRequestWithHeaders(http.MethodPost, "/periods", "not an object", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PeriodHandlerTestSuite) TestGetPeriod() {
	id := uuid.New()
	suite.periodService.EXPECT().GetByID(id).Return(&service.PeriodResponse{ID: id}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/periods/"+id.String(), nil)

	var got service.PeriodResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(id, got.ID)
}

func (suite *PeriodHandlerTestSuite) TestGetPeriod_NotFound() {
	id := uuid.New()
	suite.periodService.EXPECT().GetByID(id).Return(nil, apperrors.ErrPeriodNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/periods/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "period not found")
}

func (suite *PeriodHandlerTestSuite) TestGetPeriod_InvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/periods/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid period ID")
}

func (suite *PeriodHandlerTestSuite) TestUpdatePeriod() {
	id := uuid.New()
	req := service.PeriodRequest{StartDate: "2024-01-02", EndDate: "2024-01-16"}
	suite.periodService.EXPECT().Update(editor, id, &req).Return(&service.PeriodResponse{ID: id, StartDate: "2024-01-02"}, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/periods/"+id.String(), req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *PeriodHandlerTestSuite) TestDeletePeriod() {
	id := uuid.New()
	suite.periodService.EXPECT().Delete(editor, id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/periods/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *PeriodHandlerTestSuite) TestDeletePeriod_InUse() {
	id := uuid.New()
	suite.periodService.EXPECT().Delete(editor, id).Return(apperrors.ErrPeriodInUse)

	w := suite.http.MakeRequest(http.MethodDelete, "/periods/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "referenced by safety metrics")
}

func (suite *PeriodHandlerTestSuite) TestRequiresToken() {
	suite.http.Token = ""

	w := suite.http.MakeRequest(http.MethodGet, "/periods", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestPeriodHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodHandlerTestSuite))
}
