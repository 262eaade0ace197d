package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
	"github.com/comitanigiacomo/lifesync/internal/core/services"
)

// FakeRoutineRepo keeps encoded documents so every Load sees only what was saved.
type FakeRoutineRepo struct {
	mu    sync.Mutex
	docs  map[string][]byte
	saves int
}

func NewFakeRoutineRepo() *FakeRoutineRepo {
	return &FakeRoutineRepo{docs: make(map[string][]byte)}
}

func (f *FakeRoutineRepo) Load(ctx context.Context, userID string) (domain.RoutineSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.docs[userID]
	if !ok {
		return domain.NewRoutineSet(), nil
	}
	return domain.DecodeRoutines(data, nil)
}

func (f *FakeRoutineRepo) Save(ctx context.Context, userID string, routines domain.RoutineSet) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := domain.EncodeRoutines(routines)
	if err != nil {
		return err
	}
	f.docs[userID] = data
	f.saves++
	return nil
}

type MockRoutineRepo struct {
	mock.Mock
}

func (m *MockRoutineRepo) Load(ctx context.Context, userID string) (domain.RoutineSet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RoutineSet), args.Error(1)
}

func (m *MockRoutineRepo) Save(ctx context.Context, userID string, routines domain.RoutineSet) error {
	args := m.Called(ctx, userID, routines)
	return args.Error(0)
}

var testDay = time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

func TestRoutineService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Item is appended and persisted", func(t *testing.T) {
		repo := NewFakeRoutineRepo()
		svc := services.NewRoutineService(repo)

		routine, err := svc.AddItem(ctx, services.AddItemInput{UserID: "alice", Date: testDay, Task: "Wake up", Time: "7:00 AM"})

		require.NoError(t, err)
		require.Equal(t, 1, routine.Len())
		assert.Equal(t, domain.RoutineItem{Task: "Wake up", Time: "7:00 AM"}, routine.Items()[0])
		assert.Equal(t, 1, repo.saves)

		reloaded, err := svc.GetRoutine(ctx, "alice", testDay)
		require.NoError(t, err)
		assert.Equal(t, routine.Items(), reloaded.Items())
	})

	t.Run("Error: Duplicate task on the same day", func(t *testing.T) {
		repo := NewFakeRoutineRepo()
		svc := services.NewRoutineService(repo)

		_, err := svc.AddItem(ctx, services.AddItemInput{UserID: "alice", Date: testDay, Task: "Read"})
		require.NoError(t, err)

		_, err = svc.AddItem(ctx, services.AddItemInput{UserID: "alice", Date: testDay, Task: "Read"})
		assert.ErrorIs(t, err, domain.ErrDuplicateTask)
		assert.Equal(t, 1, repo.saves)

		_, err = svc.AddItem(ctx, services.AddItemInput{UserID: "alice", Date: testDay.AddDate(0, 0, 1), Task: "Read"})
		assert.NoError(t, err, "same task on another day is fine")
	})

	t.Run("Error: Blank task never reaches the repository", func(t *testing.T) {
		repo := new(MockRoutineRepo)
		svc := services.NewRoutineService(repo)

		_, err := svc.AddItem(ctx, services.AddItemInput{UserID: "alice", Date: testDay, Task: "  "})

		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})

	t.Run("Error: Invalid user id", func(t *testing.T) {
		svc := services.NewRoutineService(NewFakeRoutineRepo())

		_, err := svc.AddItem(ctx, services.AddItemInput{UserID: "../etc", Date: testDay, Task: "Read"})
		assert.ErrorIs(t, err, domain.ErrInvalidUserID)
	})

	t.Run("Fail: Save error propagates", func(t *testing.T) {
		repo := new(MockRoutineRepo)
		svc := services.NewRoutineService(repo)

		saveErr := errors.New("disk full")
		repo.On("Load", ctx, "alice").Return(domain.NewRoutineSet(), nil)
		repo.On("Save", ctx, "alice", mock.Anything).Return(saveErr)

		routine, err := svc.AddItem(ctx, services.AddItemInput{UserID: "Alice ", Date: testDay, Task: "Read"})

		assert.ErrorIs(t, err, saveErr)
		assert.Nil(t, routine)
		repo.AssertExpectations(t)
	})
}

func TestRoutineService_GetRoutine(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Unknown day yields an empty routine without saving", func(t *testing.T) {
		repo := NewFakeRoutineRepo()
		svc := services.NewRoutineService(repo)

		routine, err := svc.GetRoutine(ctx, "bob", testDay)

		require.NoError(t, err)
		assert.Equal(t, "2024-04-15", routine.Key())
		assert.Equal(t, 0, routine.Len())
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("Fail: Load error propagates", func(t *testing.T) {
		repo := new(MockRoutineRepo)
		svc := services.NewRoutineService(repo)

		loadErr := errors.New("permission denied")
		repo.On("Load", ctx, "bob").Return(nil, loadErr)

		_, err := svc.GetRoutine(ctx, "bob", testDay)
		assert.ErrorIs(t, err, loadErr)
	})
}

func TestRoutineService_SetItemStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRoutineRepo()
	svc := services.NewRoutineService(repo)

	_, err := svc.AddItem(ctx, services.AddItemInput{UserID: "carol", Date: testDay, Task: "Walk"})
	require.NoError(t, err)

	t.Run("Success: Toggle on and off", func(t *testing.T) {
		routine, err := svc.SetItemStatus(ctx, services.SetItemStatusInput{UserID: "carol", Date: testDay, Task: "Walk", Completed: true})
		require.NoError(t, err)
		assert.Equal(t, 100.0, routine.CompletionPercentage())

		routine, err = svc.SetItemStatus(ctx, services.SetItemStatusInput{UserID: "carol", Date: testDay, Task: "Walk", Completed: false})
		require.NoError(t, err)
		assert.Equal(t, 0.0, routine.CompletionPercentage())
	})

	t.Run("Error: Unknown task is not saved", func(t *testing.T) {
		before := repo.saves

		_, err := svc.SetItemStatus(ctx, services.SetItemStatusInput{UserID: "carol", Date: testDay, Task: "Swim", Completed: true})

		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		assert.Equal(t, before, repo.saves)
	})
}

func TestRoutineService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRoutineRepo()
	svc := services.NewRoutineService(repo)

	_, err := svc.AddItem(ctx, services.AddItemInput{UserID: "dan", Date: testDay, Task: "Walk"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, services.AddItemInput{UserID: "dan", Date: testDay, Task: "Read"})
	require.NoError(t, err)

	t.Run("Error: No routine for that date", func(t *testing.T) {
		err := svc.DeleteItem(ctx, services.DeleteItemInput{UserID: "dan", Date: testDay.AddDate(0, 0, 3), Task: "Walk"})
		assert.ErrorIs(t, err, domain.ErrRoutineNotFound)
	})

	t.Run("Error: Task absent", func(t *testing.T) {
		err := svc.DeleteItem(ctx, services.DeleteItemInput{UserID: "dan", Date: testDay, Task: "Swim"})
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("Success: Task removed and persisted", func(t *testing.T) {
		err := svc.DeleteItem(ctx, services.DeleteItemInput{UserID: "dan", Date: testDay, Task: "Walk"})
		require.NoError(t, err)

		routine, err := svc.GetRoutine(ctx, "dan", testDay)
		require.NoError(t, err)
		require.Equal(t, 1, routine.Len())
		assert.Equal(t, "Read", routine.Items()[0].Task)
	})
}

func TestRoutineService_MonthlyReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Aggregates the user's month", func(t *testing.T) {
		repo := NewFakeRoutineRepo()
		svc := services.NewRoutineService(repo)

		for _, day := range []int{1, 15} {
			date := time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC)
			for _, task := range []string{"Wake up", "Exercise"} {
				_, err := svc.AddItem(ctx, services.AddItemInput{UserID: "erin", Date: date, Task: task})
				require.NoError(t, err)
				_, err = svc.SetItemStatus(ctx, services.SetItemStatusInput{UserID: "erin", Date: date, Task: task, Completed: true})
				require.NoError(t, err)
			}
		}

		data, err := svc.MonthlyReport(ctx, "erin", 2024, 4)

		require.NoError(t, err)
		assert.Equal(t, 100.0, data.AverageCompletion)
		assert.Equal(t, 2, data.FullyCompletedDays)
		assert.Equal(t, 2, data.RecordedDays)
		assert.Equal(t, 30, data.TotalDaysInMonth)

		other, err := svc.MonthlyReport(ctx, "frank", 2024, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, other.RecordedDays, "users do not see each other's routines")
	})

	t.Run("Error: Month out of range", func(t *testing.T) {
		svc := services.NewRoutineService(NewFakeRoutineRepo())

		_, err := svc.MonthlyReport(ctx, "erin", 2024, 13)
		assert.ErrorIs(t, err, domain.ErrRange)
	})
}

func TestRoutineService_ConcurrentAddsAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRoutineRepo()
	svc := services.NewRoutineService(repo)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.AddItem(ctx, services.AddItemInput{UserID: "gina", Date: testDay, Task: string(rune('a' + n))})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	routine, err := svc.GetRoutine(ctx, "gina", testDay)
	require.NoError(t, err)
	assert.Equal(t, workers, routine.Len())
}
