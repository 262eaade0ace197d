package services

import (
	"context"
	"strings"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

const (
	StressAdvice       = "You may be prone to stress-related conditions. Consider relaxation therapy."
	BloodSugarAdvice   = "Monitor blood sugar and follow a low-carb diet."
	TherapyPlaceholder = "Online therapy scheduling is not available yet."
)

type WellnessAssessment struct {
	History domain.HealthHistory `json:"history"`
	Advice  []string             `json:"advice"`
	Note    string               `json:"note"`
}

type wellnessRule struct {
	pastKeyword    string
	symptomKeyword string
	advice         string
}

var wellnessRules = []wellnessRule{
	{pastKeyword: "anxiety", symptomKeyword: "stress", advice: StressAdvice},
	{pastKeyword: "diabetes", symptomKeyword: "sugar", advice: BloodSugarAdvice},
}

// WellnessService turns a short health history into keyword-based hints. It is
// not a diagnosis. The last submitted history is kept per user.
type WellnessService struct {
	repo domain.HealthRepository
}

func NewWellnessService(repo domain.HealthRepository) *WellnessService {
	return &WellnessService{repo: repo}
}

// Advise applies the keyword rules without touching storage.
func Advise(history domain.HealthHistory) []string {
	past := strings.ToLower(history.PastIssues)
	current := strings.ToLower(history.CurrentSymptoms)

	advice := make([]string, 0, len(wellnessRules))
	for _, r := range wellnessRules {
		if strings.Contains(past, r.pastKeyword) || strings.Contains(current, r.symptomKeyword) {
			advice = append(advice, r.advice)
		}
	}
	return advice
}

// Assess stores history as the user's latest and returns the matching advice.
// Nothing is returned when the save fails.
func (s *WellnessService) Assess(ctx context.Context, userID string, history domain.HealthHistory) (WellnessAssessment, error) {
	id, err := domain.NormalizeUserID(userID)
	if err != nil {
		return WellnessAssessment{}, err
	}

	if err := s.repo.Save(ctx, id, history); err != nil {
		return WellnessAssessment{}, err
	}

	return WellnessAssessment{
		History: history,
		Advice:  Advise(history),
		Note:    TherapyPlaceholder,
	}, nil
}

func (s *WellnessService) History(ctx context.Context, userID string) (domain.HealthHistory, error) {
	id, err := domain.NormalizeUserID(userID)
	if err != nil {
		return domain.HealthHistory{}, err
	}
	return s.repo.Load(ctx, id)
}
