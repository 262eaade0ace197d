package domain

import (
	"sort"
	"time"
)

// Streak counts consecutive fully completed days across a user's whole history.
type Streak struct {
	Current   int       `json:"current"`
	Longest   int       `json:"longest"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CalculateStreaks keeps the current streak alive while the last fully
// completed day is today or yesterday. Days after today are ignored.
func CalculateStreaks(routines RoutineSet, today time.Time) Streak {
	day := truncateDay(today)
	var days []time.Time
	for _, r := range routines {
		if r.FullyCompleted() && !r.Date().After(day) {
			days = append(days, r.Date())
		}
	}
	if len(days) == 0 {
		return Streak{}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	consecutive := func(later, earlier time.Time) bool {
		return DateKey(earlier.AddDate(0, 0, 1)) == DateKey(later)
	}

	current := 0
	if d := daysBetween(days[0], day); d >= 0 && d <= 1 {
		current = 1
		for i := 0; i < len(days)-1 && consecutive(days[i], days[i+1]); i++ {
			current++
		}
	}

	longest, run := 1, 1
	for i := 0; i < len(days)-1; i++ {
		if consecutive(days[i], days[i+1]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return Streak{Current: current, Longest: longest}
}
