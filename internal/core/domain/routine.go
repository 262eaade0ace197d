package domain

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type RoutineItem struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	Time      string `json:"time"`
}

func NewRoutineItem(task string, completed bool, at string) (RoutineItem, error) {
	item := RoutineItem{Task: task, Completed: completed, Time: at}
	if err := item.Validate(); err != nil {
		return RoutineItem{}, err
	}
	return item, nil
}

func (i RoutineItem) Validate() error {
	if strings.TrimSpace(i.Task) == "" {
		return ErrTaskEmpty
	}
	return nil
}

func (i RoutineItem) String() string {
	status := "Not Completed"
	if i.Completed {
		status = "Completed"
	}
	if i.Time != "" {
		return fmt.Sprintf("%s (Time: %s) - %s", i.Task, i.Time, status)
	}
	return fmt.Sprintf("%s - %s", i.Task, status)
}

// DailyRoutine owns the ordered items of one calendar day. The date never
// changes after construction.
type DailyRoutine struct {
	date  time.Time
	items []RoutineItem
}

func NewDailyRoutine(date time.Time) *DailyRoutine {
	y, m, d := date.Date()
	return &DailyRoutine{
		date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		items: []RoutineItem{},
	}
}

func ParseDailyRoutine(isoDate string) (*DailyRoutine, error) {
	date, err := ParseDate(isoDate)
	if err != nil {
		return nil, err
	}
	return NewDailyRoutine(date), nil
}

// ParseDate accepts only the strict YYYY-MM-DD form.
func ParseDate(isoDate string) (time.Time, error) {
	date, err := time.Parse(DateLayout, isoDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, isoDate)
	}
	return date, nil
}

func DateKey(date time.Time) string {
	return date.Format(DateLayout)
}

func (r *DailyRoutine) Date() time.Time {
	return r.date
}

func (r *DailyRoutine) Key() string {
	return DateKey(r.date)
}

func (r *DailyRoutine) Items() []RoutineItem {
	out := make([]RoutineItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *DailyRoutine) Len() int {
	return len(r.items)
}

func (r *DailyRoutine) AddItem(item RoutineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	r.items = append(r.items, item)
	return nil
}

func (r *DailyRoutine) HasTask(task string) bool {
	for _, item := range r.items {
		if item.Task == task {
			return true
		}
	}
	return false
}

// MarkComplete updates the first item named task and reports whether one was found.
func (r *DailyRoutine) MarkComplete(task string, status bool) bool {
	for i := range r.items {
		if r.items[i].Task == task {
			r.items[i].Completed = status
			return true
		}
	}
	return false
}

// RemoveItem drops every item named task.
func (r *DailyRoutine) RemoveItem(task string) bool {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.Task != task {
			kept = append(kept, item)
		}
	}
	removed := len(kept) < len(r.items)
	r.items = kept
	return removed
}

func (r *DailyRoutine) CompletedCount() int {
	done := 0
	for _, item := range r.items {
		if item.Completed {
			done++
		}
	}
	return done
}

// CompletionPercentage is 0 for a routine without items.
func (r *DailyRoutine) CompletionPercentage() float64 {
	if len(r.items) == 0 {
		return 0
	}
	return float64(r.CompletedCount()) / float64(len(r.items)) * 100
}

// FullyCompleted requires at least one item.
func (r *DailyRoutine) FullyCompleted() bool {
	return len(r.items) > 0 && r.CompletedCount() == len(r.items)
}

func (r *DailyRoutine) String() string {
	return fmt.Sprintf("Daily Routine for %s: %d items, %.2f%% completed", r.Key(), len(r.items), r.CompletionPercentage())
}
