package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

const routinesFileName = "routines.json"

var _ domain.RoutineRepository = (*JSONRoutineRepository)(nil)

// JSONRoutineRepository keeps one document per user at <dir>/<user>/routines.json.
type JSONRoutineRepository struct {
	dir    string
	logger *zap.Logger

	mu sync.Mutex
}

func NewJSONRoutineRepository(dir string, logger *zap.Logger) *JSONRoutineRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONRoutineRepository{
		dir:    dir,
		logger: logger.Named("routine_store"),
	}
}

func (r *JSONRoutineRepository) path(userID string) string {
	return filepath.Join(r.dir, userID, routinesFileName)
}

func (r *JSONRoutineRepository) Load(ctx context.Context, userID string) (domain.RoutineSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(userID)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewRoutineSet(), nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, path, err)
	}

	return decodeDocument(data, r.logger.With(zap.String("user_id", userID), zap.String("path", path))), nil
}

func (r *JSONRoutineRepository) Save(ctx context.Context, userID string, routines domain.RoutineSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := domain.EncodeRoutines(routines)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeFileAtomic(r.path(userID), data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// decodeDocument never fails: an unreadable document loads as empty and bad
// entries are dropped, each with a warning.
func decodeDocument(data []byte, logger *zap.Logger) domain.RoutineSet {
	routines, err := domain.DecodeRoutines(data, func(key string, err error) {
		logger.Warn("Skipping malformed routine record", zap.String("key", key), zap.Error(err))
	})
	if err != nil {
		logger.Warn("Routine document unreadable, starting empty", zap.Error(err))
		return domain.NewRoutineSet()
	}
	return routines
}

// writeFileAtomic writes to a temp file in the target directory and renames it
// over path, so readers never observe a partial document.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
