package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"safety-tracker-backend/internal/archive"
	"safety-tracker-backend/internal/auth"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/logger"
	"safety-tracker-backend/internal/metrics"
	"safety-tracker-backend/internal/normalize"
	"safety-tracker-backend/internal/reconcile"
	"safety-tracker-backend/internal/store"
	"safety-tracker-backend/internal/workbook"
)

// ImportRequest is one uploaded legacy workbook
type ImportRequest struct {
	Filename string
	Content  []byte
	DryRun   bool
}

// ImportService runs workbook imports: read, normalize, reconcile
type ImportService struct {
	store    store.Store
	mapping  normalize.Mapping
	archive  archive.Store
	recorder *metrics.Recorder
	logger   *logger.Logger
	now      func() time.Time
}

// NewImportService creates a new import service. arch, recorder and log may be nil.
func NewImportService(st store.Store, mapping normalize.Mapping, arch archive.Store, recorder *metrics.Recorder, log *logger.Logger) *ImportService {
	if arch == nil {
		arch = archive.Noop{}
	}
	if log == nil {
		log = logger.New()
	}
	return &ImportService{
		store:    st,
		mapping:  mapping,
		archive:  arch,
		recorder: recorder,
		logger:   log,
		now:      time.Now,
	}
}

// Import reconciles a workbook into the store. A dry run reconciles against an
// in-memory copy of the store and leaves the real one untouched.
func (s *ImportService) Import(ctx context.Context, identity auth.Identity, req *ImportRequest) (*reconcile.Report, error) {
	report, err := s.run(ctx, identity, req)
	s.recorder.ObserveReport(report, err)
	return report, err
}

func (s *ImportService) run(ctx context.Context, identity auth.Identity, req *ImportRequest) (*reconcile.Report, error) {
	if !identity.Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	log := s.logger.WithIdentity(identity).WithFields(map[string]interface{}{
		"source":  req.Filename,
		"dry_run": req.DryRun,
	})

	wb, err := workbook.OpenReader(bytes.NewReader(req.Content), req.Filename)
	if err != nil {
		log.WithError(err).Warn("Rejected unreadable workbook")
		return nil, err
	}
	defer wb.Close()

	if !req.DryRun {
		key := archive.ImportKey(s.now(), req.Filename)
		if err := s.archive.Put(ctx, key, req.Content); err != nil {
			log.WithError(err).WithField("key", key).Error("Failed to archive workbook")
		}
	}

	batch := normalize.Normalize(s.mapping, wb.Sheets())
	if err := wb.Err(); err != nil {
		log.WithError(err).Warn("Workbook could not be read to the end")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := s.store
	if req.DryRun {
		memory, err := store.NewMemoryFrom(s.store)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot store for dry run: %w", err)
		}
		target = memory
	}

	report, err := reconcile.NewEngine(target, log).Reconcile(identity, batch)
	if report != nil {
		report.Source = req.Filename
		report.DryRun = req.DryRun
	}
	if err != nil {
		return report, fmt.Errorf("import of %s aborted: %w", req.Filename, err)
	}

	log.WithFields(map[string]interface{}{
		"written":     report.Written(),
		"skipped":     report.Skipped(),
		"diagnostics": len(report.Diagnostics),
	}).Info("Workbook imported")
	return report, nil
}
