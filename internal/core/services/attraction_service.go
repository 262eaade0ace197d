package services

import (
	"sort"
	"strings"

	"github.com/comitanigiacomo/lifesync/internal/core/domain"
)

type AttractionService struct {
	attractions []domain.Attraction
}

func NewAttractionService(attractions []domain.Attraction) *AttractionService {
	return &AttractionService{
		attractions: attractions,
	}
}

func (s *AttractionService) All() []domain.Attraction {
	out := make([]domain.Attraction, len(s.attractions))
	copy(out, s.attractions)
	return out
}

// ByCategory matches case-insensitively. An empty category returns everything.
func (s *AttractionService) ByCategory(category string) []domain.Attraction {
	if strings.TrimSpace(category) == "" {
		return s.All()
	}

	out := make([]domain.Attraction, 0)
	for _, a := range s.attractions {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

// Nearest orders places by distance from the given point and keeps the first
// limit of them. A limit of zero or less means domain.DefaultNearestLimit.
func (s *AttractionService) Nearest(lat, lon float64, limit int) ([]domain.Attraction, error) {
	if err := domain.ValidateLocation(lat, lon); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultNearestLimit
	}

	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SquaredDistance(lat, lon) < out[j].SquaredDistance(lat, lon)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *AttractionService) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, a := range s.attractions {
		if !seen[a.Category] {
			seen[a.Category] = true
			categories = append(categories, a.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
