package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	matchmock "github.com/riskibarqy/league-portal/internal/mocks/domain/match"
	seasonmock "github.com/riskibarqy/league-portal/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/league-portal/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestStandingService_TableBySeason_CurrentSeason(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	service := NewStandingService(league.seasons, league.teams, league.matches, nil, logging.NewNop())

	got, err := service.TableBySeason(context.Background(), "current")
	if err != nil {
		t.Fatalf("TableBySeason error: %v", err)
	}
	if got.Season.ID != "s-2025" {
		t.Fatalf("expected active season, got %s", got.Season.ID)
	}

	order := make([]string, 0, len(got.Table.Rows))
	for _, row := range got.Table.Rows {
		order = append(order, row.TeamID)
	}
	if len(order) != 3 || order[0] != "t-a" || order[1] != "t-b" || order[2] != "t-c" {
		t.Fatalf("unexpected table order: %v", order)
	}

	top := got.Table.Rows[0]
	if top.Points() != 4 || top.GoalDifference() != 2 || top.Position != 1 {
		t.Fatalf("unexpected leader row: %+v", top)
	}
	if got.Table.CountedMatches != 3 {
		t.Fatalf("expected 3 counted matches, got %d", got.Table.CountedMatches)
	}

	if len(got.Table.Issues) != 1 || got.Table.Issues[0].MatchID != "m7" {
		t.Fatalf("expected the unknown-team match to be reported, got %+v", got.Table.Issues)
	}
	if !errors.Is(got.Table.Issues[0].Err, standing.ErrReferentialIntegrity) {
		t.Fatalf("unexpected issue error: %v", got.Table.Issues[0].Err)
	}

	if row, _ := got.Table.Row("t-b"); row.Movement != standing.MovementUp || row.PreviousPosition != 3 {
		t.Fatalf("expected t-b to move up from 3rd, got %+v", row)
	}
}

func TestStandingService_TableBySeason_PastSeason(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	service := NewStandingService(league.seasons, league.teams, league.matches, nil, logging.NewNop())

	got, err := service.TableBySeason(context.Background(), "s-2024")
	if err != nil {
		t.Fatalf("TableBySeason error: %v", err)
	}
	if got.Table.Rows[0].TeamID != "t-c" || got.Table.Rows[0].Points() != 3 {
		t.Fatalf("unexpected 2024 leader: %+v", got.Table.Rows[0])
	}
	for _, row := range got.Table.Rows {
		if row.Movement != standing.MovementNew {
			t.Fatalf("single matchday season must report new movement, got %+v", row)
		}
	}
}

func TestStandingService_TableBySeason_NoActiveSeason(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	league.seasons.items = []season.Season{{ID: "s-old", Name: "old"}}
	service := NewStandingService(league.seasons, league.teams, league.matches, nil, logging.NewNop())

	_, err := service.TableBySeason(context.Background(), "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingService_TableBySeason_SeasonNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	seasonRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "s-missing").
		Return(season.Season{}, false, nil).
		Once()

	service := NewStandingService(seasonRepo, teamRepo, matchRepo, nil, logging.NewNop())

	_, err := service.TableBySeason(ctx, "s-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStandingService_TableBySeason_StoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	storeErr := errors.New("connection reset")

	seasonRepo.
		On("GetByID", mock.Anything, "s-2025").
		Return(season.Season{ID: "s-2025", IsActive: true}, true, nil).
		Once()
	teamRepo.
		On("List", mock.Anything).
		Return(nil, storeErr).
		Once()

	service := NewStandingService(seasonRepo, teamRepo, matchRepo, nil, logging.NewNop())

	_, err := service.TableBySeason(ctx, "s-2025")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
