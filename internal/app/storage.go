// Package app wires configuration to concrete adapters for the binaries.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/lifesync/internal/adapters/cache"
	"github.com/comitanigiacomo/lifesync/internal/adapters/repository"
	"github.com/comitanigiacomo/lifesync/internal/config"
	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

type Storage struct {
	Backend  string
	Routines domain.RoutineRepository
	Journal  domain.JournalRepository
	Health   domain.HealthRepository
	Redis    *redis.Client

	db *sqlx.DB
}

// OpenStorage builds the routine store selected by STORAGE_BACKEND. Journals
// and health histories always live under DATA_DIR. When withCache is set and
// redis is configured, routine loads go through redis; an unreachable redis is
// logged and skipped.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger, withCache bool) (*Storage, error) {
	s := &Storage{
		Backend: cfg.StorageBackend,
		Journal: repository.NewJournalFileRepository(cfg.DataDir),
		Health:  repository.NewHealthFileRepository(cfg.DataDir),
	}

	switch cfg.StorageBackend {
	case config.BackendFile:
		s.Routines = repository.NewJSONRoutineRepository(cfg.DataDir, logger)

	case config.BackendSQLite, config.BackendPostgres:
		var err error
		if cfg.StorageBackend == config.BackendSQLite {
			logger.Info("Opening sqlite database", zap.String("path", cfg.SQLitePath))
			s.db, err = repository.OpenSQLite(cfg.SQLitePath)
		} else {
			logger.Info("Connecting to postgres", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
			s.db, err = repository.OpenPostgres(cfg.PostgresDSN())
		}
		if err != nil {
			return nil, err
		}

		sqlRepo := repository.NewSQLRoutineRepository(s.db, logger)
		if err := sqlRepo.EnsureSchema(ctx); err != nil {
			s.db.Close()
			return nil, err
		}
		s.Routines = sqlRepo

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	if withCache && cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Warn("Redis unavailable, running without cache and rate limiting", zap.Error(err))
		} else {
			s.Redis = rdb
			s.Routines = repository.NewCachedRoutineRepository(s.Routines, rdb, cfg.CacheTTL, logger)
		}
	}

	return s, nil
}

// Ping checks the routine store. For the file backend it checks that DATA_DIR
// can be created.
func (s *Storage) Ping(ctx context.Context, dataDir string) error {
	if s.db != nil {
		return s.db.PingContext(ctx)
	}
	return os.MkdirAll(dataDir, 0o755)
}

func (s *Storage) Close() error {
	var firstErr error
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
