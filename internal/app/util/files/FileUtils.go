package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// TempStore hands out scratch file paths and removes them again.
type TempStore interface {
	// AllocatePath returns a fresh, unique path for a file of the given kind.
	// The file itself is not created.
	AllocatePath(kind, ext string) (string, error)
	// Release removes the given paths. Failures are logged, never returned.
	Release(paths ...string)
}

// DirStore is a TempStore backed by a directory on local disk
type DirStore struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// NewDirStore creates the scratch directory if needed and returns a store for it.
func NewDirStore(dir string, logger *zap.Logger) (*DirStore, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "video-transcriber")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory %s: %w", dir, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirStore{dir: dir, logger: logger, now: time.Now}, nil
}

// Dir returns the scratch directory
func (s *DirStore) Dir() string {
	return s.dir
}

// AllocatePath builds <kind>-<unix nanos>-<uuid prefix><ext>. The uuid part
// keeps names unique when two calls observe the same clock reading.
func (s *DirStore) AllocatePath(kind, ext string) (string, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return "", fmt.Errorf("temp file kind is required")
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	name := fmt.Sprintf("%s-%d-%s%s", kind, s.now().UnixNano(), uuid.New().String()[:8], ext)
	return filepath.Join(s.dir, name), nil
}

// Release deletes each path if present
func (s *DirStore) Release(paths ...string) {
	for _, path := range lo.Compact(paths) {
		err := os.Remove(path)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		s.logger.Warn("failed to remove temp file", zap.String("path", path), zap.Error(err))
	}
}
