package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

var _ domain.RoutineRepository = (*CachedRoutineRepository)(nil)

var errStaleFill = errors.New("cache generation changed during load")

// CachedRoutineRepository is a read-through redis cache in front of another
// repository. Cache failures are logged and fall back to next.
//
// Every Save bumps a per-user generation counter before dropping the cached
// document. A fill only lands if the generation it read before loading from
// next is still current, so a slow read never overwrites a newer save.
type CachedRoutineRepository struct {
	next   domain.RoutineRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRoutineRepository(next domain.RoutineRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRoutineRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedRoutineRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("routine_cache"),
	}
}

func (r *CachedRoutineRepository) cacheKey(userID string) string {
	return fmt.Sprintf("routines:%s", userID)
}

func (r *CachedRoutineRepository) genKey(userID string) string {
	return fmt.Sprintf("routines:%s:gen", userID)
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// generation treats a missing counter as 0.
func generation(ctx context.Context, c stringGetter, key string) (int64, error) {
	gen, err := c.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *CachedRoutineRepository) invalidate(ctx context.Context, userID string) {
	_, err := r.cache.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, r.genKey(userID))
		pipe.Del(ctx, r.cacheKey(userID))
		return nil
	})
	if err != nil {
		r.logger.Warn("Failed to invalidate cache", zap.String("user_id", userID), zap.Error(err))
	}
}

// fill stores data only while the generation still equals seen.
func (r *CachedRoutineRepository) fill(ctx context.Context, userID string, seen int64, data []byte) {
	key := r.cacheKey(userID)
	genKey := r.genKey(userID)

	err := r.cache.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx, genKey)
		if err != nil {
			return err
		}
		if current != seen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
		r.logger.Debug("Skipping stale cache fill", zap.String("user_id", userID))
	default:
		r.logger.Warn("Redis set error", zap.Error(err))
	}
}

func (r *CachedRoutineRepository) Load(ctx context.Context, userID string) (domain.RoutineSet, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		routines, decErr := domain.DecodeRoutines(val, nil)
		if decErr == nil {
			return routines, nil
		}

		r.logger.Warn("Corrupted cache entry, cleaning up key", zap.String("user_id", userID), zap.Error(decErr))
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("Redis read error", zap.Error(err))
	}

	seen, genErr := generation(ctx, r.cache, r.genKey(userID))

	routines, err := r.next.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return routines, nil
	}
	if data, err := domain.EncodeRoutines(routines); err == nil {
		r.fill(ctx, userID, seen, data)
	}

	return routines, nil
}

func (r *CachedRoutineRepository) Save(ctx context.Context, userID string, routines domain.RoutineSet) error {
	if err := r.next.Save(ctx, userID, routines); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}
