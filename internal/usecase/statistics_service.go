package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const defaultStatsWorkerCount = 4

// Overview holds the counters shown on the home page.
type Overview struct {
	Players       int
	ActiveTeams   int
	Matches       int
	ActiveSeasons int
}

type PlayerLeader struct {
	PlayerID string
	Name     string
	TeamName string
	Value    int
}

type TeamLeader struct {
	TeamID   string
	TeamName string
	Wins     int
}

type Statistics struct {
	TotalMatches     int
	CompletedMatches int
	TotalGoals       int
	GoalsPerMatch    float64
	TotalPlayers     int
	TotalTeams       int
	AverageRating    float64
	TopScorer        *PlayerLeader
	TopAssister      *PlayerLeader
	MostWins         *TeamLeader
}

type StatisticsService struct {
	seasonRepo  season.Repository
	teamRepo    team.Repository
	matchRepo   match.Repository
	playerRepo  player.Repository
	aggregator  *standing.Aggregator
	workerCount int
	logger      *logging.Logger
}

func NewStatisticsService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	aggregator *standing.Aggregator,
	workerCount int,
	logger *logging.Logger,
) *StatisticsService {
	if aggregator == nil {
		aggregator = &standing.Aggregator{}
	}
	if workerCount <= 0 {
		workerCount = defaultStatsWorkerCount
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &StatisticsService{
		seasonRepo:  seasonRepo,
		teamRepo:    teamRepo,
		matchRepo:   matchRepo,
		playerRepo:  playerRepo,
		aggregator:  aggregator,
		workerCount: workerCount,
		logger:      logger,
	}
}

type leagueSnapshot struct {
	seasons []season.Season
	teams   []team.Team
	matches []match.Match
	players []player.Player
}

func (s *StatisticsService) Overview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Overview")
	defer span.End()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		Players:       len(activePlayers(snap.players)),
		ActiveTeams:   len(activeTeams(snap.teams)),
		Matches:       len(snap.matches),
		ActiveSeasons: len(activeSeasons(snap.seasons)),
	}, nil
}

// Summary aggregates league-wide numbers. Most wins sums wins over the
// tables of every active season.
func (s *StatisticsService) Summary(ctx context.Context) (Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Summary")
	defer span.End()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return Statistics{}, err
	}

	players := activePlayers(snap.players)
	out := Statistics{
		TotalMatches: len(snap.matches),
		TotalPlayers: len(players),
		TotalTeams:   len(activeTeams(snap.teams)),
	}

	for _, m := range snap.matches {
		if !m.IsCompleted() || !m.HasScore() {
			continue
		}
		out.CompletedMatches++
		out.TotalGoals += m.TotalGoals()
	}
	if out.CompletedMatches > 0 {
		out.GoalsPerMatch = float64(out.TotalGoals) / float64(out.CompletedMatches)
	}

	out.AverageRating = averageRating(players)
	out.TopScorer = leadingPlayer(players, func(p player.Player) int { return p.Stats.Goals })
	out.TopAssister = leadingPlayer(players, func(p player.Player) int { return p.Stats.Assists })

	tables, err := s.seasonTables(ctx, activeSeasons(snap.seasons), snap.teams, snap.matches)
	if err != nil {
		return Statistics{}, err
	}
	out.MostWins = mostWins(tables)

	return out, nil
}

// snapshot reads every store concurrently and fails on the first error.
func (s *StatisticsService) snapshot(ctx context.Context) (leagueSnapshot, error) {
	var snap leagueSnapshot

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.seasonRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list seasons: %w", err)
		}
		snap.seasons = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		snap.teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		snap.matches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		snap.players = items
		return nil
	})

	if err := p.Wait(); err != nil {
		return leagueSnapshot{}, err
	}
	return snap, nil
}

// seasonTables builds one table per season on the worker pool. Results keep
// the order of seasons.
func (s *StatisticsService) seasonTables(
	ctx context.Context,
	seasons []season.Season,
	teams []team.Team,
	matches []match.Match,
) ([]standing.Table, error) {
	tables := make([]standing.Table, len(seasons))
	if len(seasons) == 0 {
		return tables, nil
	}

	workers, err := ants.NewPool(s.workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	var (
		wg        sync.WaitGroup
		submitErr error
	)
	for i, item := range seasons {
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			tables[i] = buildSeasonTable(ctx, s.aggregator, s.logger, item.ID, teams, matchesOfSeason(matches, item.ID))
		}); err != nil {
			wg.Done()
			submitErr = fmt.Errorf("submit season table to worker pool: %w", err)
			break
		}
	}
	wg.Wait()

	if submitErr != nil {
		return nil, submitErr
	}
	return tables, nil
}

func activePlayers(items []player.Player) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			out = append(out, item)
		}
	}
	slices.SortStableFunc(out, func(a, b player.Player) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func activeTeams(items []team.Team) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			out = append(out, item)
		}
	}
	return out
}

// averageRating ignores players without a rating yet.
func averageRating(players []player.Player) float64 {
	var (
		sum   float64
		rated int
	)
	for _, p := range players {
		if p.Stats.Rating <= 0 {
			continue
		}
		sum += p.Stats.Rating
		rated++
	}
	if rated == 0 {
		return 0
	}
	return sum / float64(rated)
}

// leadingPlayer returns the player with the highest value; ties keep the
// lowest player id. Nil when nobody has a positive value.
func leadingPlayer(players []player.Player, value func(player.Player) int) *PlayerLeader {
	var best *PlayerLeader
	for _, p := range players {
		v := value(p)
		if v <= 0 || (best != nil && v <= best.Value) {
			continue
		}
		best = &PlayerLeader{
			PlayerID: p.ID,
			Name:     p.DisplayName(),
			TeamName: p.TeamName,
			Value:    v,
		}
	}
	return best
}

// mostWins sums wins per team over tables; ties keep the team met first in
// table order.
func mostWins(tables []standing.Table) *TeamLeader {
	wins := make(map[string]*TeamLeader)
	order := make([]string, 0)
	for _, table := range tables {
		for _, row := range table.Rows {
			leader, ok := wins[row.TeamID]
			if !ok {
				leader = &TeamLeader{TeamID: row.TeamID, TeamName: row.TeamName}
				wins[row.TeamID] = leader
				order = append(order, row.TeamID)
			}
			leader.Wins += row.Won
		}
	}

	var best *TeamLeader
	for _, teamID := range order {
		leader := wins[teamID]
		if leader.Wins <= 0 || (best != nil && leader.Wins <= best.Wins) {
			continue
		}
		best = leader
	}
	return best
}
