package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

func sampleRoutines(t *testing.T) domain.RoutineSet {
	t.Helper()

	set := domain.NewRoutineSet()
	day := set.GetOrCreate(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, day.AddItem(domain.RoutineItem{Task: "Wake up", Completed: true, Time: "7:00 AM"}))
	require.NoError(t, day.AddItem(domain.RoutineItem{Task: "Exercise"}))

	other := set.GetOrCreate(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, other.AddItem(domain.RoutineItem{Task: "Read", Completed: true}))
	return set
}

func assertSameRoutines(t *testing.T, want, got domain.RoutineSet) {
	t.Helper()

	require.Equal(t, want.Keys(), got.Keys())
	for _, key := range want.Keys() {
		assert.Equal(t, want[key].Items(), got[key].Items(), key)
		assert.True(t, want[key].Date().Equal(got[key].Date()), key)
	}
}

func TestJSONRoutineRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewJSONRoutineRepository(dir, zap.NewNop())

	t.Run("Success: Missing document loads empty", func(t *testing.T) {
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

	t.Run("Success: Document layout", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dir, "alice", "routines.json"))
		require.NoError(t, err)

		text := string(data)
		assert.True(t, strings.HasPrefix(text, "{\n    \"2024-04-01\": {"), text)
		assert.Contains(t, text, `"time": ""`)

		leftovers, err := filepath.Glob(filepath.Join(dir, "alice", ".tmp-*"))
		require.NoError(t, err)
		assert.Empty(t, leftovers)
	})

	t.Run("Success: Users are isolated", func(t *testing.T) {
		routines, err := repo.Load(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, routines)
	})

	t.Run("Success: Save overwrites", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "alice", domain.NewRoutineSet()))

		got, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestJSONRoutineRepository_MalformedInput(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Bad records are skipped with a warning", func(t *testing.T) {
		dir := t.TempDir()
		core, logs := observer.New(zapcore.WarnLevel)
		repo := NewJSONRoutineRepository(dir, zap.New(core))

		doc := `{
			"2024-04-01": {"date": "2024-04-01", "items": [{"task": "Walk", "completed": true, "time": null}]},
			"2024-04-02": {"items": []},
			"2024-04-03": {"date": "2024-04-03"},
			"2024-04-04": {"date": "2024-04-05", "items": []}
		}`
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "carol"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "carol", "routines.json"), []byte(doc), 0o644))

		routines, err := repo.Load(ctx, "carol")

		require.NoError(t, err)
		assert.Equal(t, []string{"2024-04-01"}, routines.Keys())
		assert.Equal(t, 3, logs.FilterMessage("Skipping malformed routine record").Len())
	})

	t.Run("Success: Unparsable document loads empty", func(t *testing.T) {
		dir := t.TempDir()
		core, logs := observer.New(zapcore.WarnLevel)
		repo := NewJSONRoutineRepository(dir, zap.New(core))

		require.NoError(t, os.MkdirAll(filepath.Join(dir, "dan"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dan", "routines.json"), []byte("{not json"), 0o644))

		routines, err := repo.Load(ctx, "dan")

		require.NoError(t, err)
		assert.Empty(t, routines)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("Error: Unreadable path is a storage error", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewJSONRoutineRepository(dir, nil)

		require.NoError(t, os.MkdirAll(filepath.Join(dir, "erin", "routines.json"), 0o755))

		_, err := repo.Load(ctx, "erin")
		assert.ErrorIs(t, err, domain.ErrStorage)
	})

	t.Run("Error: Invalid mapping is not written", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewJSONRoutineRepository(dir, nil)

		bad := domain.RoutineSet{"2024-01-01": domain.NewDailyRoutine(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))}

		err := repo.Save(ctx, "frank", bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NoFileExists(t, filepath.Join(dir, "frank", "routines.json"))
	})

	t.Run("Error: Cancelled context", func(t *testing.T) {
		repo := NewJSONRoutineRepository(t.TempDir(), nil)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.Load(cctx, "gina")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
