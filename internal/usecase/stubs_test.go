package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/team"
)

type stubSeasonRepository struct {
	items []season.Season
	err   error
}

func (s *stubSeasonRepository) List(_ context.Context) ([]season.Season, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]season.Season(nil), s.items...), nil
}

func (s *stubSeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	for _, item := range s.items {
		if item.ID == seasonID {
			return item, true, nil
		}
	}
	return season.Season{}, false, s.err
}

type stubTeamRepository struct {
	items []team.Team
	err   error
}

func (s *stubTeamRepository) List(_ context.Context) ([]team.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]team.Team(nil), s.items...), nil
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	for _, item := range s.items {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, s.err
}

type stubMatchRepository struct {
	items []match.Match
	err   error
}

func (s *stubMatchRepository) List(_ context.Context) ([]match.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]match.Match(nil), s.items...), nil
}

func (s *stubMatchRepository) ListBySeason(_ context.Context, seasonID string) ([]match.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]match.Match, 0, len(s.items))
	for _, item := range s.items {
		if item.SeasonID == seasonID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubMatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	for _, item := range s.items {
		if item.ID == matchID {
			return item, true, nil
		}
	}
	return match.Match{}, false, s.err
}

type stubPlayerRepository struct {
	items []player.Player
	err   error
}

func (s *stubPlayerRepository) List(_ context.Context) ([]player.Player, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]player.Player(nil), s.items...), nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	for _, item := range s.items {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, s.err
}

type stubFreeAgentRepository struct {
	items []freeagent.FreeAgent
}

func (s *stubFreeAgentRepository) List(_ context.Context) ([]freeagent.FreeAgent, error) {
	return append([]freeagent.FreeAgent(nil), s.items...), nil
}

type stubNewsRepository struct {
	items []news.Article
}

func (s *stubNewsRepository) List(_ context.Context) ([]news.Article, error) {
	return append([]news.Article(nil), s.items...), nil
}

func (s *stubNewsRepository) GetByID(_ context.Context, articleID string) (news.Article, bool, error) {
	for _, item := range s.items {
		if item.ID == articleID {
			return item, true, nil
		}
	}
	return news.Article{}, false, nil
}

type stubAwardRepository struct {
	items []award.Award
}

func (s *stubAwardRepository) List(_ context.Context) ([]award.Award, error) {
	return append([]award.Award(nil), s.items...), nil
}

func intPtr(v int) *int {
	return &v
}

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 15, 0, 0, 0, time.UTC)
}

// fixtureLeague is a small league: one active season with three played
// matchdays, a scheduled and a live match, one record pointing at an unknown
// team, and an older inactive season.
type fixtureLeague struct {
	seasons *stubSeasonRepository
	teams   *stubTeamRepository
	matches *stubMatchRepository
	players *stubPlayerRepository
}

func newFixtureLeague() fixtureLeague {
	return fixtureLeague{
		seasons: &stubSeasonRepository{items: []season.Season{
			{ID: "s-2024", Name: "2024/25", StartDate: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "s-2025", Name: "2025/26", StartDate: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
		}},
		teams: &stubTeamRepository{items: []team.Team{
			{ID: "t-a", Name: "Arsenal Rovers", Abbreviation: "ARS", IsActive: true},
			{ID: "t-b", Name: "Bristol Bees", Abbreviation: "BRB", IsActive: true},
			{ID: "t-c", Name: "Cardiff City", Abbreviation: "CAR", IsActive: true},
			{ID: "t-d", Name: "Dormant FC", Abbreviation: "DOR"},
		}},
		matches: &stubMatchRepository{items: []match.Match{
			{ID: "m1", SeasonID: "s-2025", HomeTeamID: "t-a", AwayTeamID: "t-b", HomeScore: intPtr(2), AwayScore: intPtr(0), Status: match.StatusCompleted, MatchDate: day(time.August, 10)},
			{ID: "m2", SeasonID: "s-2025", HomeTeamID: "t-c", AwayTeamID: "t-a", HomeScore: intPtr(1), AwayScore: intPtr(1), Status: match.StatusCompleted, MatchDate: day(time.August, 17)},
			{ID: "m3", SeasonID: "s-2025", HomeTeamID: "t-b", AwayTeamID: "t-c", HomeScore: intPtr(3), AwayScore: intPtr(1), Status: match.StatusCompleted, MatchDate: day(time.August, 17)},
			{ID: "m4", SeasonID: "s-2025", HomeTeamID: "t-a", AwayTeamID: "t-b", Status: match.StatusScheduled, MatchDate: day(time.August, 24)},
			{ID: "m5", SeasonID: "s-2025", HomeTeamID: "t-c", AwayTeamID: "t-b", Status: match.StatusLive, MatchDate: day(time.August, 19)},
			{ID: "m6", SeasonID: "s-2024", HomeTeamID: "t-a", AwayTeamID: "t-c", HomeScore: intPtr(0), AwayScore: intPtr(1), Status: match.StatusCompleted, MatchDate: time.Date(2024, time.September, 1, 15, 0, 0, 0, time.UTC)},
			{ID: "m7", SeasonID: "s-2025", HomeTeamID: "t-x", AwayTeamID: "t-a", HomeScore: intPtr(1), AwayScore: intPtr(0), Status: match.StatusCompleted, MatchDate: day(time.August, 12)},
		}},
		players: &stubPlayerRepository{items: []player.Player{
			{ID: "user-1", Username: "bee_keeper", Email: "bee@example.com", FirstName: "Bea", LastName: "Keeper", TeamID: "t-b", TeamName: "Bristol Bees", PreferredPosition: player.PositionGoalkeeper, IsActive: true,
				Stats: player.Stats{Goals: 5, Assists: 2, Rating: 7.5, MatchesPlayed: 4, Wins: 3}},
			{ID: "user-2", Username: "gunner", FirstName: "Ada", LastName: "Striker", TeamID: "t-a", TeamName: "Arsenal Rovers", PreferredPosition: player.PositionStriker, IsActive: true,
				Stats: player.Stats{Goals: 8, Assists: 1, Rating: 8.5, MatchesPlayed: 5, Wins: 2}},
			{ID: "user-3", Username: "retired", PreferredPosition: player.PositionStriker,
				Stats: player.Stats{Goals: 20, Assists: 9, Rating: 9.9}},
		}},
	}
}
