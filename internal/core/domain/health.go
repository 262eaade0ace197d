package domain

// HealthHistory is the last health summary a user reported.
type HealthHistory struct {
	PastIssues      string `json:"past_issues"`
	CurrentSymptoms string `json:"current_symptoms"`
}
