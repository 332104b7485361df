package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/league-portal/internal/domain/season"
)

// CurrentSeasonAlias resolves to the active season wherever a season id is
// accepted.
const CurrentSeasonAlias = "current"

type SeasonService struct {
	seasonRepo season.Repository
}

func NewSeasonService(seasonRepo season.Repository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

// ListSeasons returns every season, newest first.
func (s *SeasonService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListSeasons")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	sortSeasonsNewestFirst(items)
	return items, nil
}

func (s *SeasonService) GetSeason(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetSeason")
	defer span.End()

	return resolveSeason(ctx, s.seasonRepo, seasonID)
}

// resolveSeason looks up a season by id. An empty id or the current alias
// selects the active season with the latest start date.
func resolveSeason(ctx context.Context, repo season.Repository, seasonID string) (season.Season, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" || strings.EqualFold(seasonID, CurrentSeasonAlias) {
		items, err := repo.List(ctx)
		if err != nil {
			return season.Season{}, fmt.Errorf("list seasons: %w", err)
		}
		current, ok := currentSeason(items)
		if !ok {
			return season.Season{}, fmt.Errorf("%w: no active season", ErrNotFound)
		}
		return current, nil
	}

	item, exists, err := repo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	return item, nil
}

func currentSeason(items []season.Season) (season.Season, bool) {
	var (
		out   season.Season
		found bool
	)
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		if !found || item.StartDate.After(out.StartDate) {
			out = item
			found = true
		}
	}
	return out, found
}

func activeSeasons(items []season.Season) []season.Season {
	out := make([]season.Season, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			out = append(out, item)
		}
	}
	sortSeasonsNewestFirst(out)
	return out
}

func sortSeasonsNewestFirst(items []season.Season) {
	slices.SortStableFunc(items, func(a, b season.Season) int {
		if c := b.StartDate.Compare(a.StartDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
