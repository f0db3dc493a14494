package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS writes objects below a directory
type FS struct {
	root string
}

// NewFS creates a filesystem store rooted at dir
func NewFS(dir string) *FS {
	return &FS{root: dir}
}

func (s *FS) Put(ctx context.Context, key string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := filepath.Join(s.root, filepath.FromSlash(key))
	if rel, err := filepath.Rel(s.root, target); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("archive key %q escapes %s", key, s.root)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return fmt.Errorf("failed to write archive %s: %w", key, err)
	}
	return nil
}
