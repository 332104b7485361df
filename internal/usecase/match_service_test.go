package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	matchmock "github.com/riskibarqy/league-portal/internal/mocks/domain/match"
	seasonmock "github.com/riskibarqy/league-portal/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/league-portal/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func matchIDs(items []MatchView) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Match.ID)
	}
	return out
}

func TestMatchService_ListMatches_StatusFilter(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	service := NewMatchService(league.seasons, league.teams, league.matches, nil)

	page, err := service.ListMatches(context.Background(), "current", listquery.Query{Category: "upcoming"})
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if got := matchIDs(page.Items); len(got) != 1 || got[0] != "m4" {
		t.Fatalf("expected upcoming to select scheduled matches, got %v", got)
	}

	page, err = service.ListMatches(context.Background(), "", listquery.Query{Category: "completed"})
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if got := matchIDs(page.Items); len(got) != 5 || got[len(got)-1] != "m6" {
		t.Fatalf("expected completed matches of every season, most recent first, got %v", got)
	}

	page, err = service.ListMatches(context.Background(), "", listquery.Query{Category: "completed", SortKey: "date", Direction: listquery.Ascending})
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if got := matchIDs(page.Items); len(got) != 5 || got[0] != "m6" {
		t.Fatalf("expected ascending order to start with the oldest match, got %v", got)
	}
}

func TestMatchService_ListMatches_SearchOnTeamNames(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	service := NewMatchService(league.seasons, league.teams, league.matches, nil)

	page, err := service.ListMatches(context.Background(), "s-2025", listquery.Query{Search: "cardiff", SortKey: "goals"})
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if got := matchIDs(page.Items); len(got) != 3 || got[0] != "m3" || got[1] != "m2" || got[2] != "m5" {
		t.Fatalf("unexpected search result: %v", got)
	}
	if page.Items[0].HomeTeam.Name != "Bristol Bees" {
		t.Fatalf("expected resolved home team, got %+v", page.Items[0].HomeTeam)
	}
}

func TestMatchService_ListLive(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	service := NewMatchService(league.seasons, league.teams, league.matches, nil)

	got, err := service.ListLive(context.Background())
	if err != nil {
		t.Fatalf("ListLive error: %v", err)
	}
	if ids := matchIDs(got); len(ids) != 1 || ids[0] != "m5" {
		t.Fatalf("unexpected live matches: %v", ids)
	}
}

func TestMatchService_GetMatch_UnknownTeamKeepsID(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	service := NewMatchService(league.seasons, league.teams, league.matches, nil)

	got, err := service.GetMatch(context.Background(), "m7")
	if err != nil {
		t.Fatalf("GetMatch error: %v", err)
	}
	if got.HomeTeam.ID != "t-x" || got.HomeTeam.Name != "" || got.AwayTeam.Name != "Arsenal Rovers" {
		t.Fatalf("unexpected participants: %+v / %+v", got.HomeTeam, got.AwayTeam)
	}
}

func TestMatchService_GetMatch_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)

	matchRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "m-missing").
		Return(match.Match{}, false, nil).
		Once()

	service := NewMatchService(seasonRepo, teamRepo, matchRepo, nil)

	_, err := service.GetMatch(ctx, "m-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
