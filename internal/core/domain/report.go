package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	NoRoutineRecorded = "No routine recorded"
	NotApplicable     = "N/A"
)

type DayDetail struct {
	Date            string   `json:"date"`
	Recorded        bool     `json:"recorded"`
	Items           []string `json:"items"`
	Completion      *float64 `json:"completion,omitempty"`
	CompletionLabel string   `json:"completion_label"`
}

type MonthlyReportData struct {
	Year                   int         `json:"year"`
	Month                  int         `json:"month"`
	MonthYear              string      `json:"month_year"`
	AverageCompletion      float64     `json:"average_completion"`
	AverageCompletionLabel string      `json:"average_completion_label"`
	FullyCompletedDays     int         `json:"fully_completed_days"`
	RecordedDays           int         `json:"recorded_days"`
	FullyCompletedLabel    string      `json:"fully_completed_label"`
	TotalDaysInMonth       int         `json:"total_days_in_month"`
	LongestStreak          int         `json:"longest_streak"`
	DailyDetails           []DayDetail `json:"daily_details"`
	Analysis               []string    `json:"analysis"`
	Recommendations        []string    `json:"recommendations"`
}

// MonthlyReport is a read-only view over the routines of one calendar month.
type MonthlyReport struct {
	year        int
	month       time.Month
	daysInMonth int
	byDay       map[int]*DailyRoutine
}

func NewMonthlyReport(year, month int, routines RoutineSet) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	if err := routines.Validate(); err != nil {
		return nil, err
	}

	rep := &MonthlyReport{
		year:        year,
		month:       time.Month(month),
		daysInMonth: DaysInMonth(year, time.Month(month)),
		byDay:       make(map[int]*DailyRoutine),
	}

	for _, r := range routines {
		y, m, d := r.Date().Date()
		if y == year && m == rep.month {
			rep.byDay[d] = r
		}
	}

	return rep, nil
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (m *MonthlyReport) DaysInMonth() int {
	return m.daysInMonth
}

func (m *MonthlyReport) RecordedDays() int {
	return len(m.byDay)
}

func (m *MonthlyReport) AverageCompletion() float64 {
	total := 0.0
	validDays := 0
	for day := 1; day <= m.daysInMonth; day++ {
		if r, ok := m.byDay[day]; ok {
			total += r.CompletionPercentage()
			validDays++
		}
	}
	if validDays == 0 {
		return 0
	}
	return total / float64(validDays)
}

func (m *MonthlyReport) FullyCompletedDays() int {
	count := 0
	for day := 1; day <= m.daysInMonth; day++ {
		if r, ok := m.byDay[day]; ok && r.FullyCompleted() {
			count++
		}
	}
	return count
}

// LongestStreak counts the longest run of consecutive fully completed days.
func (m *MonthlyReport) LongestStreak() int {
	longest, current := 0, 0
	for day := 1; day <= m.daysInMonth; day++ {
		if r, ok := m.byDay[day]; ok && r.FullyCompleted() {
			current++
			if current > longest {
				longest = current
			}
			continue
		}
		current = 0
	}
	return longest
}

func (m *MonthlyReport) Data() *MonthlyReportData {
	avg := m.AverageCompletion()
	full := m.FullyCompletedDays()
	analysis, recommendations := m.Analyze()

	data := &MonthlyReportData{
		Year:                   m.year,
		Month:                  int(m.month),
		MonthYear:              fmt.Sprintf("%s %d", m.month, m.year),
		AverageCompletion:      round2(avg),
		AverageCompletionLabel: percentLabel(avg),
		FullyCompletedDays:     full,
		RecordedDays:           m.RecordedDays(),
		FullyCompletedLabel:    fmt.Sprintf("%d / %d (recorded days)", full, m.RecordedDays()),
		TotalDaysInMonth:       m.daysInMonth,
		LongestStreak:          m.LongestStreak(),
		DailyDetails:           make([]DayDetail, 0, m.daysInMonth),
		Analysis:               analysis,
		Recommendations:        recommendations,
	}

	for day := 1; day <= m.daysInMonth; day++ {
		date := time.Date(m.year, m.month, day, 0, 0, 0, 0, time.UTC)
		r, ok := m.byDay[day]
		if !ok {
			data.DailyDetails = append(data.DailyDetails, DayDetail{
				Date:            DateKey(date),
				Items:           []string{NoRoutineRecorded},
				CompletionLabel: NotApplicable,
			})
			continue
		}

		items := make([]string, 0, r.Len())
		for _, item := range r.Items() {
			items = append(items, item.String())
		}
		pct := round2(r.CompletionPercentage())
		data.DailyDetails = append(data.DailyDetails, DayDetail{
			Date:            DateKey(date),
			Recorded:        true,
			Items:           items,
			Completion:      &pct,
			CompletionLabel: percentLabel(r.CompletionPercentage()),
		})
	}

	return data
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func percentLabel(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
