package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

// StreakCache serves streaks computed in the background.
type StreakCache interface {
	Get(userID string) (domain.Streak, bool)
}

// StatsService is read-only; it never saves, so it does not share the
// RoutineService lock.
type StatsService struct {
	repo    domain.RoutineRepository
	streaks StreakCache
	now     func() time.Time
}

func NewStatsService(repo domain.RoutineRepository) *StatsService {
	return &StatsService{
		repo: repo,
		now:  time.Now,
	}
}

// UseStreakCache makes GetStreak prefer values cached today over a fresh load.
func (s *StatsService) UseStreakCache(cache StreakCache) {
	s.streaks = cache
}

func (s *StatsService) load(ctx context.Context, userID string) (string, domain.RoutineSet, error) {
	id, err := domain.NormalizeUserID(userID)
	if err != nil {
		return "", nil, err
	}

	routines, err := s.repo.Load(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if routines == nil {
		routines = domain.NewRoutineSet()
	}
	return id, routines, nil
}

func (s *StatsService) GetWeeklyStats(ctx context.Context, input domain.StatsInput) (*domain.RangeStats, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, routines, err := s.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return domain.NewRangeStats(routines, input.StartDate, input.EndDate)
}

func (s *StatsService) GetStreak(ctx context.Context, userID string) (domain.Streak, error) {
	if s.streaks != nil {
		id, err := domain.NormalizeUserID(userID)
		if err != nil {
			return domain.Streak{}, err
		}
		// The current streak depends on today, so older values are recomputed.
		if cached, ok := s.streaks.Get(id); ok && domain.DateKey(cached.UpdatedAt) == domain.DateKey(s.now().UTC()) {
			return cached, nil
		}
	}

	_, routines, err := s.load(ctx, userID)
	if err != nil {
		return domain.Streak{}, err
	}

	now := s.now()
	streak := domain.CalculateStreaks(routines, now)
	streak.UpdatedAt = now.UTC()
	return streak, nil
}
