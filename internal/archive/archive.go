// Package archive keeps a copy of every imported source workbook.
package archive

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"safety-tracker-backend/internal/config"
	apperrors "safety-tracker-backend/internal/errors"
)

// Store persists an object under a key
type Store interface {
	Put(ctx context.Context, key string, body []byte) error
}

// Noop discards everything
type Noop struct{}

func (Noop) Put(context.Context, string, []byte) error { return nil }

// New builds the store selected by ARCHIVE_BACKEND
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.ArchiveBackend {
	case "", "none":
		return Noop{}, nil
	case "fs":
		return NewFS(cfg.ArchiveDir), nil
	case "s3":
		return NewS3(ctx, S3Config{
			Bucket:    cfg.ArchiveS3Bucket,
			Region:    cfg.ArchiveS3Region,
			Endpoint:  cfg.ArchiveS3Endpoint,
			PathStyle: cfg.ArchiveS3PathStyle,
		})
	default:
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("unknown archive backend %q", cfg.ArchiveBackend))
	}
}

// ImportKey names the archived copy of an uploaded workbook
func ImportKey(at time.Time, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "workbook"
	}
	return fmt.Sprintf("imports/%s-%s", at.UTC().Format("20060102T150405Z"), name)
}
