package domain

import (
	"sort"
	"time"
)

const MaxStatsRangeDays = 366

// Values of TaskStat.DailyProgress.
const (
	ProgressAbsent  = -1
	ProgressPending = 0
	ProgressDone    = 1
)

type RangeStats struct {
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	TotalDays    int        `json:"total_days"`
	RecordedDays int        `json:"recorded_days"`
	TotalTasks   int        `json:"total_tasks"`
	OverallRate  float64    `json:"overall_completion_rate"`
	Tasks        []TaskStat `json:"tasks"`
}

type TaskStat struct {
	Task           string  `json:"task"`
	DaysScheduled  int     `json:"days_scheduled"`
	DaysCompleted  int     `json:"days_completed"`
	CompletionRate float64 `json:"completion_rate"`
	DailyProgress  []int   `json:"daily_progress"`
}

type StatsInput struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
}

// Validate checks the window bounds. Both ends are inclusive.
func (in StatsInput) Validate() error {
	start, end := truncateDay(in.StartDate), truncateDay(in.EndDate)
	if start.After(end) {
		return ErrStatsRangeOrder
	}
	if daysBetween(start, end) >= MaxStatsRangeDays {
		return ErrStatsRangeSize
	}
	return nil
}

// NewRangeStats aggregates per-task completion over [start, end]. A task's
// rate is measured against the days it was scheduled, not the window length.
func NewRangeStats(routines RoutineSet, start, end time.Time) (*RangeStats, error) {
	in := StatsInput{StartDate: start, EndDate: end}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	start, end = truncateDay(start), truncateDay(end)
	totalDays := daysBetween(start, end) + 1

	stats := &RangeStats{
		StartDate: DateKey(start),
		EndDate:   DateKey(end),
		TotalDays: totalDays,
		Tasks:     []TaskStat{},
	}

	byTask := make(map[string]*TaskStat)
	var scheduled, completed int

	for i := 0; i < totalDays; i++ {
		routine, ok := routines.Get(start.AddDate(0, 0, i))
		if !ok {
			continue
		}
		stats.RecordedDays++

		for _, item := range routine.Items() {
			ts, seen := byTask[item.Task]
			if !seen {
				ts = &TaskStat{Task: item.Task, DailyProgress: make([]int, totalDays)}
				for d := range ts.DailyProgress {
					ts.DailyProgress[d] = ProgressAbsent
				}
				byTask[item.Task] = ts
			}
			// Duplicate task names on one day count once; completion wins.
			if ts.DailyProgress[i] == ProgressAbsent {
				ts.DaysScheduled++
				scheduled++
				ts.DailyProgress[i] = ProgressPending
			}
			if item.Completed && ts.DailyProgress[i] != ProgressDone {
				ts.DaysCompleted++
				completed++
				ts.DailyProgress[i] = ProgressDone
			}
		}
	}

	for _, ts := range byTask {
		ts.CompletionRate = round2(float64(ts.DaysCompleted) / float64(ts.DaysScheduled) * 100)
		stats.Tasks = append(stats.Tasks, *ts)
	}
	sort.Slice(stats.Tasks, func(i, j int) bool { return stats.Tasks[i].Task < stats.Tasks[j].Task })

	stats.TotalTasks = len(stats.Tasks)
	if scheduled > 0 {
		stats.OverallRate = round2(float64(completed) / float64(scheduled) * 100)
	}
	return stats, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
