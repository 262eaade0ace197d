package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

const journalDirName = "journal"

var _ domain.JournalRepository = (*JournalFileRepository)(nil)

// JournalFileRepository appends to <dir>/<user>/journal/YYYY-MM-DD.txt.
type JournalFileRepository struct {
	dir string

	mu sync.Mutex
}

func NewJournalFileRepository(dir string) *JournalFileRepository {
	return &JournalFileRepository{dir: dir}
}

func (r *JournalFileRepository) journalDir(userID string) string {
	return filepath.Join(r.dir, userID, journalDirName)
}

func (r *JournalFileRepository) Append(ctx context.Context, userID string, at time.Time, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.journalDir(userID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrStorage, dir, err)
	}

	path := filepath.Join(dir, at.Format(domain.DateLayout)+".txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrStorage, path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(domain.FormatJournalBlock(at, text)); err != nil {
		return fmt.Errorf("%w: append %s: %v", domain.ErrStorage, path, err)
	}
	return nil
}

func (r *JournalFileRepository) List(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.journalDir(userID)
	files, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.JournalEntry{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, dir, err)
	}

	entries := make([]domain.JournalEntry, 0, len(files))
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		day := strings.TrimSuffix(name, ".txt")
		if _, err := domain.ParseDate(day); err != nil {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, name, err)
		}
		entries = append(entries, domain.JournalEntry{Date: day, Content: string(content)})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries, nil
}
