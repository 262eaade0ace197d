package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

const healthFileName = "health.json"

var _ domain.HealthRepository = (*HealthFileRepository)(nil)

// HealthFileRepository keeps one JSON object per user in <dir>/<user>/health.json.
// Keys it does not know about are preserved on Save.
type HealthFileRepository struct {
	dir string

	mu sync.Mutex
}

func NewHealthFileRepository(dir string) *HealthFileRepository {
	return &HealthFileRepository{dir: dir}
}

func (r *HealthFileRepository) path(userID string) string {
	return filepath.Join(r.dir, userID, healthFileName)
}

func (r *HealthFileRepository) read(path string) (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, path, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorage, path, err)
	}
	return doc, nil
}

func (r *HealthFileRepository) Load(ctx context.Context, userID string) (domain.HealthHistory, error) {
	if err := ctx.Err(); err != nil {
		return domain.HealthHistory{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(userID)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.HealthHistory{}, nil
		}
		return domain.HealthHistory{}, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, path, err)
	}

	var history domain.HealthHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return domain.HealthHistory{}, fmt.Errorf("%w: decode %s: %v", domain.ErrStorage, path, err)
	}
	return history, nil
}

func (r *HealthFileRepository) Save(ctx context.Context, userID string, history domain.HealthHistory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.path(userID)
	doc, err := r.read(path)
	if err != nil {
		return err
	}

	for key, value := range map[string]string{
		"past_issues":      history.PastIssues,
		"current_symptoms": history.CurrentSymptoms,
	} {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		doc[key] = raw
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode health history: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}
