package repository

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

var _ domain.RoutineRepository = (*InMemoryRoutineRepository)(nil)

// InMemoryRoutineRepository clones on the way in and out so callers never share
// routines with the store.
type InMemoryRoutineRepository struct {
	store map[string]domain.RoutineSet

	mu sync.RWMutex
}

func NewInMemoryRoutineRepository() *InMemoryRoutineRepository {
	return &InMemoryRoutineRepository{
		store: make(map[string]domain.RoutineSet),
	}
}

func (r *InMemoryRoutineRepository) Load(ctx context.Context, userID string) (domain.RoutineSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routines, ok := r.store[userID]
	if !ok {
		return domain.NewRoutineSet(), nil
	}
	return routines.Clone(), nil
}

func (r *InMemoryRoutineRepository) Save(ctx context.Context, userID string, routines domain.RoutineSet) error {
	if err := routines.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[userID] = routines.Clone()
	return nil
}
