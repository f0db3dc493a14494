package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"safety-tracker-backend/internal/archive"
	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/config"
	"safety-tracker-backend/internal/database"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/logger"
	"safety-tracker-backend/internal/normalize"
	"safety-tracker-backend/internal/service"
	"safety-tracker-backend/internal/store"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type runOptions struct {
	file          string
	apply         bool
	as            string
	format        string
	periodsSheet  string
	coachesSheet  string
	ignoredSheets []string

	connectAttempts int
	connectDelay    time.Duration
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile a legacy workbook into the tracker database",
		Long: "Reads a legacy workbook, normalizes its sheets and reconciles periods, coaches and metrics.\n" +
			"Without --apply the workbook is reconciled against an in-memory copy of the database and nothing is written.",
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Path to the legacy workbook (.xlsx or .xls)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Apply changes to DB (default is dry-run)")
	cmd.Flags().StringVar(&opts.as, "as", os.Getenv("IMPORT_OPERATOR"), "Operator recorded in audit columns (defaults to $IMPORT_OPERATOR)")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Report format: text|json|yaml")
	cmd.Flags().StringVar(&opts.periodsSheet, "periods-sheet", "", "Override IMPORT_PERIODS_SHEET")
	cmd.Flags().StringVar(&opts.coachesSheet, "coaches-sheet", "", "Override IMPORT_COACHES_SHEET")
	cmd.Flags().StringSliceVar(&opts.ignoredSheets, "ignore-sheet", nil, "Sheet to skip; may be repeated")
	cmd.Flags().IntVar(&opts.connectAttempts, "connect-attempts", 30, "Database connection attempts before giving up")
	cmd.Flags().DurationVar(&opts.connectDelay, "connect-delay", time.Second, "Delay between database connection attempts")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (o *runOptions) validate() error {
	if strings.TrimSpace(o.file) == "" {
		return withCode(exitUsage, fmt.Errorf("--file is required"))
	}
	if !auth.NewIdentity(o.as).Authenticated() {
		return withCode(exitUsage, fmt.Errorf("--as is required (or set IMPORT_OPERATOR)"))
	}
	if _, err := parseFormat(o.format); err != nil {
		return withCode(exitUsage, err)
	}
	if o.connectAttempts < 1 {
		return withCode(exitUsage, fmt.Errorf("--connect-attempts must be at least 1"))
	}
	return nil
}

// mapping applies the sheet flags on top of the configured layout
func (o *runOptions) mapping(cfg *config.Config) (normalize.Mapping, error) {
	m := normalize.Mapping{
		PeriodsSheet: cfg.ImportPeriodsSheet,
		CoachesSheet: cfg.ImportCoachesSheet,
		Ignored:      append(append([]string{}, cfg.ImportIgnoredSheets...), o.ignoredSheets...),
	}
	if s := strings.TrimSpace(o.periodsSheet); s != "" {
		m.PeriodsSheet = s
	}
	if s := strings.TrimSpace(o.coachesSheet); s != "" {
		m.CoachesSheet = s
	}
	if strings.EqualFold(m.PeriodsSheet, m.CoachesSheet) {
		return m, withCode(exitUsage, fmt.Errorf("periods and coaches must be read from different sheets"))
	}
	return m, nil
}

func runImportCmd(ctx context.Context, opts runOptions, out, errOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return withCode(exitUsage, err)
	}
	logger.SetupWithOutput(cfg.LogLevel, errOut)

	mapping, err := opts.mapping(cfg)
	if err != nil {
		return err
	}

	arch, err := archive.New(ctx, cfg)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("archive: %w", err))
	}

	db, err := connectWithRetry(ctx, cfg.DatabaseURL, opts.connectAttempts, opts.connectDelay)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	svc := service.NewImportService(store.NewDatabaseStoreFromDB(db), mapping, arch, nil, logger.New())
	return runImport(ctx, svc, opts, out)
}

// runImport reads the workbook, runs it through svc and renders the report.
// Row diagnostics never fail the command; only errors that stop the import do.
func runImport(ctx context.Context, svc service.ImportServiceInterface, opts runOptions, out io.Writer) error {
	format, err := parseFormat(opts.format)
	if err != nil {
		return withCode(exitUsage, err)
	}

	content, err := os.ReadFile(opts.file)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("read workbook: %w", err))
	}

	report, importErr := svc.Import(ctx, auth.NewIdentity(opts.as), &service.ImportRequest{
		Filename: filepath.Base(opts.file),
		Content:  content,
		DryRun:   !opts.apply,
	})
	if report != nil {
		if err := renderReport(out, report, format); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	}
	if importErr != nil {
		if apperrors.IsUnreadableWorkbook(importErr) {
			return withCode(exitUsage, importErr)
		}
		return withCode(exitFailure, importErr)
	}
	return nil
}

func connectWithRetry(ctx context.Context, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Keep GORM quiet; the report is the output of this command
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}
	log := logger.New()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.WithError(err).WithFields(map[string]interface{}{
				"attempt":      attempt,
				"max_attempts": maxAttempts,
			}).Warn("Database not ready")
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
