package services

import (
	"context"
	"strings"
	"time"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

const JournalSavedMessage = "Journal entry saved privately."

type JournalService struct {
	repo domain.JournalRepository
	now  func() time.Time
}

func NewJournalService(repo domain.JournalRepository, now func() time.Time) *JournalService {
	if now == nil {
		now = time.Now
	}
	return &JournalService{
		repo: repo,
		now:  now,
	}
}

// Write appends text to today's journal file and returns the confirmation message.
func (s *JournalService) Write(ctx context.Context, userID, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyJournalText
	}

	id, err := domain.NormalizeUserID(userID)
	if err != nil {
		return "", err
	}

	if err := s.repo.Append(ctx, id, s.now(), text); err != nil {
		return "", err
	}
	return JournalSavedMessage, nil
}

func (s *JournalService) List(ctx context.Context, userID string) ([]domain.JournalEntry, error) {
	id, err := domain.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, id)
}
