package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type SeasonTable struct {
	Season season.Season
	Table  standing.Table
}

type StandingService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
	aggregator *standing.Aggregator
	logger     *logging.Logger
}

func NewStandingService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	aggregator *standing.Aggregator,
	logger *logging.Logger,
) *StandingService {
	if aggregator == nil {
		aggregator = &standing.Aggregator{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		aggregator: aggregator,
		logger:     logger,
	}
}

// TableBySeason builds the standings of one season. Matches that cannot be
// counted are logged and reported on the table, they never fail the call.
func (s *StandingService) TableBySeason(ctx context.Context, seasonID string) (SeasonTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.TableBySeason")
	defer span.End()

	item, err := resolveSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return SeasonTable{}, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return SeasonTable{}, fmt.Errorf("list teams: %w", err)
	}

	matches, err := s.matchRepo.ListBySeason(ctx, item.ID)
	if err != nil {
		return SeasonTable{}, fmt.Errorf("list matches by season: %w", err)
	}

	table := buildSeasonTable(ctx, s.aggregator, s.logger, item.ID, teams, matches)
	return SeasonTable{Season: item, Table: table}, nil
}

// buildSeasonTable ranks the active teams plus any known team that played in
// the season, so a club deactivated mid-season keeps its row.
func buildSeasonTable(
	ctx context.Context,
	aggregator *standing.Aggregator,
	logger *logging.Logger,
	seasonID string,
	teams []team.Team,
	matches []match.Match,
) standing.Table {
	table := aggregator.Build(seasonTeams(teams, matches), matches)
	for _, issue := range table.Issues {
		logger.WarnContext(ctx, "match skipped from standings",
			"season_id", seasonID,
			"match_id", issue.MatchID,
			"error", issue.Err,
		)
	}
	return table
}

func seasonTeams(teams []team.Team, matches []match.Match) []team.Team {
	played := make(map[string]struct{}, len(teams))
	for _, m := range matches {
		played[m.HomeTeamID] = struct{}{}
		played[m.AwayTeamID] = struct{}{}
	}

	out := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		if _, ok := played[item.ID]; item.IsActive || ok {
			out = append(out, item)
		}
	}
	return out
}

func matchesOfSeason(matches []match.Match, seasonID string) []match.Match {
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	return out
}
