package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-portal/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons []season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	return &SeasonRepository{seasons: append([]season.Season(nil), seasons...)}
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.seasons))
	out = append(out, r.seasons...)

	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.seasons {
		if item.ID == seasonID {
			return item, true, nil
		}
	}

	return season.Season{}, false, nil
}
