//go:build integration
// +build integration

package store_test

import (
	"context"
	"io"
	"testing"

	"safety-tracker-backend/internal/auth"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/logger"
	"safety-tracker-backend/internal/normalize"
	"safety-tracker-backend/internal/reconcile"
	"safety-tracker-backend/internal/service"
	"safety-tracker-backend/internal/store"
	"safety-tracker-backend/internal/testutils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// PostgresImportTestSuite runs whole imports against the real schema
type PostgresImportTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *store.DatabaseStore
	importService *service.ImportService
	engine        *reconcile.Engine
	operator      auth.Identity
}

func (suite *PostgresImportTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = store.NewDatabaseStoreFromDB(suite.baseTestSuite.DB)
	l := logrus.New()
	l.SetOutput(io.Discard)
	log := logger.NewWithEntry(logrus.NewEntry(l))
	suite.importService = service.NewImportService(suite.store, normalize.DefaultMapping(), nil, nil, log)
	suite.engine = reconcile.NewEngine(suite.store, log)
	suite.operator = auth.NewIdentity("operator@example.com")
}

func (suite *PostgresImportTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PostgresImportTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PostgresImportTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PostgresImportTestSuite) importLegacy(dryRun bool) *reconcile.Report {
	report, err := suite.importService.Import(context.Background(), suite.operator, &service.ImportRequest{
		Filename: "legacy.xlsx",
		Content:  testutils.LegacyWorkbook(suite.T()),
		DryRun:   dryRun,
	})
	suite.Require().NoError(err)
	return report
}

func (suite *PostgresImportTestSuite) TestImport_WritesAllRecordKinds() {
	report := suite.importLegacy(false)

	suite.Equal(reconcile.Counts{Created: 2}, report.Periods)
	suite.Equal(reconcile.Counts{Created: 2}, report.Coaches)
	suite.Equal(reconcile.Counts{Created: 3}, report.Metrics)
	suite.Empty(report.Diagnostics)

	periods, err := suite.store.ListPeriods()
	suite.Require().NoError(err)
	suite.Require().Len(periods, 2)
	suite.Equal("operator@example.com", periods[0].CreatedBy)

	metrics, err := suite.store.ListMetrics(nil)
	suite.Require().NoError(err)
	suite.Len(metrics, 3)
}

func (suite *PostgresImportTestSuite) TestImport_SecondRunChangesNothing() {
	suite.importLegacy(false)
	report := suite.importLegacy(false)

	suite.Equal(0, report.Written())
	suite.Equal(reconcile.Counts{Unchanged: 3}, report.Metrics)
}

func (suite *PostgresImportTestSuite) TestImport_DryRunWritesNothing() {
	report := suite.importLegacy(true)
	suite.True(report.DryRun)
	suite.Equal(3, report.Metrics.Created)

	coaches, err := suite.store.ListCoaches()
	suite.Require().NoError(err)
	suite.Empty(coaches)
}

func (suite *PostgresImportTestSuite) TestDeletePeriod_RefusedWhileMetricsReferenceIt() {
	suite.importLegacy(false)
	periods, err := suite.store.ListPeriods()
	suite.Require().NoError(err)

	err = suite.engine.DeletePeriod(suite.operator, periods[0].ID)
	suite.ErrorIs(err, apperrors.ErrPeriodInUse)
}

func TestPostgresImportTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresImportTestSuite))
}
