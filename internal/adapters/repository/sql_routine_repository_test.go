package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

func setupSQLite(t *testing.T) (*SQLRoutineRepository, *observer.ObservedLogs) {
	t.Helper()

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	core, logs := observer.New(zapcore.WarnLevel)
	repo := NewSQLRoutineRepository(db, zap.New(core))
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo, logs
}

func TestSQLRoutineRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	repo, logs := setupSQLite(t)

	t.Run("Success: Unknown user loads empty", func(t *testing.T) {
		routines, err := repo.Load(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, routines)
	})

	t.Run("Success: Save then Load", func(t *testing.T) {
		want := sampleRoutines(t)
		require.NoError(t, repo.Save(ctx, "alice", want))

		got, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		assertSameRoutines(t, want, got)
	})

	t.Run("Success: Second save replaces the document", func(t *testing.T) {
		next := sampleRoutines(t)
		delete(next, "2024-04-02")
		require.NoError(t, repo.Save(ctx, "alice", next))

		got, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-04-01"}, got.Keys())
	})

	t.Run("Success: Corrupted row loads empty", func(t *testing.T) {
		_, err := repo.db.ExecContext(ctx,
			`INSERT INTO routine_documents (user_id, document, updated_at) VALUES ('bob', 'garbage', CURRENT_TIMESTAMP)`)
		require.NoError(t, err)

		got, err := repo.Load(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, 1, logs.FilterMessage("Routine document unreadable, starting empty").Len())
	})

	t.Run("Success: EnsureSchema is idempotent", func(t *testing.T) {
		assert.NoError(t, repo.EnsureSchema(ctx))
		assert.NoError(t, repo.Ping(ctx))
	})

	t.Run("Error: Closed database", func(t *testing.T) {
		closed, _ := setupSQLite(t)
		require.NoError(t, closed.db.Close())

		_, err := closed.Load(ctx, "alice")
		assert.ErrorIs(t, err, domain.ErrStorage)

		err = closed.Save(ctx, "alice", domain.NewRoutineSet())
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}
