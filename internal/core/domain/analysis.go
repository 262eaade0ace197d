package domain

type reportStats struct {
	recordedDays       int
	averageCompletion  float64
	fullyCompletedDays int
	daysInMonth        int
}

type analysisRule struct {
	applies        func(s reportStats) bool
	analysis       string
	recommendation string
}

var noDataRule = analysisRule{
	applies:        func(s reportStats) bool { return s.recordedDays == 0 },
	analysis:       "No routine data recorded for this month.",
	recommendation: "Start tracking your daily routines to gain insights.",
}

// Each ladder is evaluated top to bottom; the first matching rule wins.
var averageCompletionRules = []analysisRule{
	{
		applies:        func(s reportStats) bool { return s.averageCompletion < 70 },
		analysis:       "Low average completion rate suggests inconsistency in following the routine.",
		recommendation: "Try to schedule tasks at specific times and set reminders. Break down larger tasks into smaller, more manageable steps.",
	},
	{
		applies:        func(s reportStats) bool { return s.averageCompletion < 90 },
		analysis:       "Good average completion rate, but there's room for improvement.",
		recommendation: "Identify the reasons for incomplete tasks and find strategies to overcome them. Consider adding some flexibility to your schedule.",
	},
	{
		applies:        func(reportStats) bool { return true },
		analysis:       "Excellent average completion rate! You are consistently following your routine.",
		recommendation: "Keep up the good work! Consider adding new healthy habits to your routine.",
	},
}

var fullyCompletedRules = []analysisRule{
	{
		applies: func(s reportStats) bool {
			return float64(s.fullyCompletedDays) < float64(s.daysInMonth)*0.5
		},
		analysis:       "Low number of days with 100% completion indicates that you often miss completing all tasks.",
		recommendation: "Evaluate if your daily routine is realistic and sustainable. Prioritize essential tasks and be flexible with less important ones.",
	},
	{
		applies: func(s reportStats) bool {
			return float64(s.fullyCompletedDays) < float64(s.daysInMonth)*0.8
		},
		analysis:       "A fair number of days with 100% completion.",
		recommendation: "Try to identify what helps you complete all tasks and do more of that. Ensure you have enough time for each task.",
	},
	{
		applies:        func(reportStats) bool { return true },
		analysis:       "Great job on completing all tasks on most days!",
		recommendation: "Maintain your discipline and consistency. You may want to reflect on how your routine makes you feel.",
	},
}

// TODO: derive this pair from task names such as "Exercise" or "Sleep".
var healthPlaceholderRule = analysisRule{
	analysis:       "[Placeholder for specific health-related analysis based on task names, e.g., tracking 'Exercise' or 'Sleep' tasks.]",
	recommendation: "[Placeholder for specific health recommendations based on routine data.]",
}

func (m *MonthlyReport) stats() reportStats {
	return reportStats{
		recordedDays:       m.RecordedDays(),
		averageCompletion:  m.AverageCompletion(),
		fullyCompletedDays: m.FullyCompletedDays(),
		daysInMonth:        m.daysInMonth,
	}
}

// Analyze returns parallel analysis and recommendation lists.
func (m *MonthlyReport) Analyze() ([]string, []string) {
	s := m.stats()

	if noDataRule.applies(s) {
		return []string{noDataRule.analysis}, []string{noDataRule.recommendation}
	}

	var analysis, recommendations []string
	for _, ladder := range [][]analysisRule{averageCompletionRules, fullyCompletedRules} {
		for _, rule := range ladder {
			if rule.applies(s) {
				analysis = append(analysis, rule.analysis)
				recommendations = append(recommendations, rule.recommendation)
				break
			}
		}
	}

	analysis = append(analysis, healthPlaceholderRule.analysis)
	recommendations = append(recommendations, healthPlaceholderRule.recommendation)

	return analysis, recommendations
}
