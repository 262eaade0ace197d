// Package workers runs background jobs that derive data from saved routines.
package workers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

const defaultQueueSize = 100

// StreakWorker recomputes a user's streak after their routines change and
// keeps the latest value in memory.
//
// Enqueue forgets the cached value up front, so a dropped or pending job never
// leaves readers with a streak computed from an older save.
type StreakWorker struct {
	repo   domain.RoutineRepository
	logger *zap.Logger
	now    func() time.Time
	jobs   chan string

	mu      sync.RWMutex
	streaks map[string]domain.Streak
	gens    map[string]uint64
}

func NewStreakWorker(repo domain.RoutineRepository, logger *zap.Logger, now func() time.Time) *StreakWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &StreakWorker{
		repo:    repo,
		logger:  logger.Named("streak_worker"),
		now:     now,
		jobs:    make(chan string, defaultQueueSize),
		streaks: make(map[string]domain.Streak),
		gens:    make(map[string]uint64),
	}
}

// Start consumes jobs until ctx is cancelled. The returned channel is closed
// once the loop has exited.
func (w *StreakWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.logger.Info("Streak worker started")
		for {
			select {
			case userID := <-w.jobs:
				w.processJob(ctx, userID)
			case <-ctx.Done():
				w.logger.Info("Streak worker shutting down")
				return
			}
		}
	}()
	return done
}

// Enqueue never blocks; a full queue drops the job. The user's cached streak
// is invalidated either way.
func (w *StreakWorker) Enqueue(userID string) {
	w.mu.Lock()
	delete(w.streaks, userID)
	w.gens[userID]++
	w.mu.Unlock()

	select {
	case w.jobs <- userID:
	default:
		w.logger.Warn("Streak queue full, dropping job", zap.String("user_id", userID))
	}
}

func (w *StreakWorker) Get(userID string) (domain.Streak, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, ok := w.streaks[userID]
	return s, ok
}

func (w *StreakWorker) processJob(ctx context.Context, userID string) {
	w.mu.RLock()
	gen := w.gens[userID]
	w.mu.RUnlock()

	routines, err := w.repo.Load(ctx, userID)
	if err != nil {
		w.logger.Error("Failed to load routines for streak", zap.String("user_id", userID), zap.Error(err))
		return
	}

	now := w.now()
	streak := domain.CalculateStreaks(routines, now)
	streak.UpdatedAt = now.UTC()

	w.mu.Lock()
	if w.gens[userID] != gen {
		// A newer save was enqueued while loading.
		w.mu.Unlock()
		return
	}
	prev, seen := w.streaks[userID]
	w.streaks[userID] = streak
	w.mu.Unlock()

	if !seen || prev.Current != streak.Current || prev.Longest != streak.Longest {
		w.logger.Debug("Streak updated",
			zap.String("user_id", userID),
			zap.Int("current", streak.Current),
			zap.Int("longest", streak.Longest),
		)
	}
}
