package services

import (
	"context"
	"sync"
	"time"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

// RoutineService runs every load-mutate-save cycle under a single lock so that
// concurrent requests cannot overwrite each other's changes.
type RoutineService struct {
	repo     domain.RoutineRepository
	mu       sync.Mutex
	onChange func(userID string)
}

func NewRoutineService(repo domain.RoutineRepository) *RoutineService {
	return &RoutineService{
		repo: repo,
	}
}

// OnChange registers fn to run after every successful save. fn must not block.
func (s *RoutineService) OnChange(fn func(userID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func (s *RoutineService) save(ctx context.Context, id string, routines domain.RoutineSet) error {
	if err := s.repo.Save(ctx, id, routines); err != nil {
		return err
	}
	if s.onChange != nil {
		s.onChange(id)
	}
	return nil
}

type AddItemInput struct {
	UserID string
	Date   time.Time
	Task   string
	Time   string
}

type SetItemStatusInput struct {
	UserID    string
	Date      time.Time
	Task      string
	Completed bool
}

type DeleteItemInput struct {
	UserID string
	Date   time.Time
	Task   string
}

func (s *RoutineService) load(ctx context.Context, userID string) (string, domain.RoutineSet, error) {
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

// GetRoutine returns the routine for date, creating an empty one in memory if needed.
func (s *RoutineService) GetRoutine(ctx context.Context, userID string, date time.Time) (*domain.DailyRoutine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, routines, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return routines.GetOrCreate(date), nil
}

func (s *RoutineService) AddItem(ctx context.Context, input AddItemInput) (*domain.DailyRoutine, error) {
	item, err := domain.NewRoutineItem(input.Task, false, input.Time)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, routines, err := s.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	routine := routines.GetOrCreate(input.Date)
	if routine.HasTask(item.Task) {
		return nil, domain.ErrDuplicateTask
	}
	if err := routine.AddItem(item); err != nil {
		return nil, err
	}

	if err := s.save(ctx, id, routines); err != nil {
		return nil, err
	}
	return routine, nil
}

func (s *RoutineService) SetItemStatus(ctx context.Context, input SetItemStatusInput) (*domain.DailyRoutine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, routines, err := s.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	routine := routines.GetOrCreate(input.Date)
	if !routine.MarkComplete(input.Task, input.Completed) {
		return nil, domain.ErrTaskNotFound
	}

	if err := s.save(ctx, id, routines); err != nil {
		return nil, err
	}
	return routine, nil
}

func (s *RoutineService) DeleteItem(ctx context.Context, input DeleteItemInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, routines, err := s.load(ctx, input.UserID)
	if err != nil {
		return err
	}

	routine, ok := routines.Get(input.Date)
	if !ok {
		return domain.ErrRoutineNotFound
	}
	if !routine.RemoveItem(input.Task) {
		return domain.ErrTaskNotFound
	}

	return s.save(ctx, id, routines)
}

func (s *RoutineService) MonthlyReport(ctx context.Context, userID string, year, month int) (*domain.MonthlyReportData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, routines, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	report, err := domain.NewMonthlyReport(year, month, routines)
	if err != nil {
		return nil, err
	}
	return report.Data(), nil
}
