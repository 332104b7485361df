package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-portal/internal/domain/match"
)

type MatchRepository struct {
	mu              sync.RWMutex
	matches         []match.Match
	matchesBySeason map[string][]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	bySeason := make(map[string][]match.Match)
	for _, item := range matches {
		bySeason[item.SeasonID] = append(bySeason[item.SeasonID], item)
	}

	return &MatchRepository{
		matches:         append([]match.Match(nil), matches...),
		matchesBySeason: bySeason,
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	out = append(out, r.matches...)

	return out, nil
}

func (r *MatchRepository) ListBySeason(_ context.Context, seasonID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.matchesBySeason[seasonID]
	out := make([]match.Match, 0, len(items))
	out = append(out, items...)

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.matches {
		if item.ID == matchID {
			return item, true, nil
		}
	}

	return match.Match{}, false, nil
}
