package domain

import (
	"fmt"
	"sort"
	"time"
)

// RoutineSet maps an ISO date key to the routine recorded for that day.
type RoutineSet map[string]*DailyRoutine

func NewRoutineSet() RoutineSet {
	return make(RoutineSet)
}

func (s RoutineSet) Get(date time.Time) (*DailyRoutine, bool) {
	r, ok := s[DateKey(date)]
	return r, ok
}

// GetOrCreate inserts an empty routine when the date is unknown. Nothing is persisted.
func (s RoutineSet) GetOrCreate(date time.Time) *DailyRoutine {
	key := DateKey(date)
	if r, ok := s[key]; ok {
		return r
	}
	r := NewDailyRoutine(date)
	s[key] = r
	return r
}

func (s RoutineSet) Validate() error {
	for key, r := range s {
		if r == nil {
			return fmt.Errorf("%w: nil routine for %s", ErrInvalidRoutine, key)
		}
		if r.Key() != key {
			return fmt.Errorf("%w: key %s holds routine dated %s", ErrInvalidRoutine, key, r.Key())
		}
	}
	return nil
}

// Keys are returned in calendar order.
func (s RoutineSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s RoutineSet) Clone() RoutineSet {
	out := make(RoutineSet, len(s))
	for k, r := range s {
		if r == nil {
			continue
		}
		cp := NewDailyRoutine(r.date)
		cp.items = r.Items()
		out[k] = cp
	}
	return out
}
