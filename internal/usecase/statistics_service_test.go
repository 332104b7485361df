package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

func newTestStatisticsService(league fixtureLeague, workers int) *StatisticsService {
	return NewStatisticsService(league.seasons, league.teams, league.matches, league.players, nil, workers, logging.NewNop())
}

func TestStatisticsService_Overview(t *testing.T) {
	t.Parallel()

	got, err := newTestStatisticsService(newFixtureLeague(), 2).Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}
	want := Overview{Players: 2, ActiveTeams: 3, Matches: 7, ActiveSeasons: 1}
	if got != want {
		t.Fatalf("unexpected overview: got=%+v want=%+v", got, want)
	}
}

func TestStatisticsService_Summary(t *testing.T) {
	t.Parallel()

	got, err := newTestStatisticsService(newFixtureLeague(), 1).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}

	if got.TotalMatches != 7 || got.CompletedMatches != 5 || got.TotalGoals != 10 {
		t.Fatalf("unexpected match totals: %+v", got)
	}
	if math.Abs(got.GoalsPerMatch-2.0) > 1e-9 {
		t.Fatalf("unexpected goals per match: %v", got.GoalsPerMatch)
	}
	if math.Abs(got.AverageRating-8.0) > 1e-9 {
		t.Fatalf("inactive players must not count towards the average, got %v", got.AverageRating)
	}
	if got.TopScorer == nil || got.TopScorer.PlayerID != "user-2" || got.TopScorer.Value != 8 {
		t.Fatalf("unexpected top scorer: %+v", got.TopScorer)
	}
	if got.TopAssister == nil || got.TopAssister.Name != "Bea Keeper" {
		t.Fatalf("unexpected top assister: %+v", got.TopAssister)
	}
	// t-a and t-b both won once; the table leader keeps the tie.
	if got.MostWins == nil || got.MostWins.TeamID != "t-a" || got.MostWins.Wins != 1 {
		t.Fatalf("unexpected most wins: %+v", got.MostWins)
	}
}

func TestStatisticsService_Summary_StoreFailure(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	league.matches.err = errors.New("timeout")

	_, err := newTestStatisticsService(league, 2).Summary(context.Background())
	if err == nil || !errors.Is(err, league.matches.err) {
		t.Fatalf("expected match store error, got %v", err)
	}
}

func TestStatisticsService_SeasonTables_KeepSeasonOrder(t *testing.T) {
	t.Parallel()

	league := newFixtureLeague()
	service := newTestStatisticsService(league, 2)

	seasons, _ := league.seasons.List(context.Background())
	tables, err := service.seasonTables(context.Background(), seasons, league.teams.items, league.matches.items)
	if err != nil {
		t.Fatalf("seasonTables error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected one table per season, got %d", len(tables))
	}
	if tables[0].Rows[0].TeamID != "t-c" || tables[1].Rows[0].TeamID != "t-a" {
		t.Fatalf("tables out of season order: %s, %s", tables[0].Rows[0].TeamID, tables[1].Rows[0].TeamID)
	}
}

func TestMostWins_SumsAcrossTables(t *testing.T) {
	t.Parallel()

	tables := []standing.Table{
		{Rows: []standing.Row{{TeamID: "x", TeamName: "X", Won: 2}, {TeamID: "y", TeamName: "Y", Won: 1}}},
		{Rows: []standing.Row{{TeamID: "y", TeamName: "Y", Won: 3}, {TeamID: "x", TeamName: "X"}}},
	}

	got := mostWins(tables)
	if got == nil || got.TeamID != "y" || got.Wins != 4 {
		t.Fatalf("unexpected leader: %+v", got)
	}

	if mostWins(nil) != nil {
		t.Fatalf("expected no leader without tables")
	}
}
