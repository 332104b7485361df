package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"golang.org/x/text/language"
)

const (
	teamRecentMatches   = 5
	teamUpcomingMatches = 3
)

// TeamSummary is a team with its row in the current table. Ranked is false
// when no season is active.
type TeamSummary struct {
	Team   team.Team
	Row    standing.Row
	Ranked bool
}

type TeamDetails struct {
	TeamSummary
	Season          *season.Season
	RecentMatches   []MatchView
	UpcomingMatches []MatchView
}

type TeamService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
	aggregator *standing.Aggregator
	schema     *listquery.Schema[TeamSummary]
	logger     *logging.Logger
}

func NewTeamService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	aggregator *standing.Aggregator,
	schema *listquery.Schema[TeamSummary],
	logger *logging.Logger,
) *TeamService {
	if aggregator == nil {
		aggregator = &standing.Aggregator{}
	}
	if schema == nil {
		schema = teamSchema(language.English)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		aggregator: aggregator,
		schema:     schema,
		logger:     logger,
	}
}

// ListTeams returns active teams in table order, then applies the query.
func (s *TeamService) ListTeams(ctx context.Context, query listquery.Query) (listquery.Page[TeamSummary], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	summaries, _, err := s.summaries(ctx)
	if err != nil {
		return listquery.Page[TeamSummary]{}, err
	}

	active := make([]TeamSummary, 0, len(summaries))
	for _, item := range summaries {
		if item.Team.IsActive {
			active = append(active, item)
		}
	}

	page, err := s.schema.Apply(active, query)
	if err != nil {
		return listquery.Page[TeamSummary]{}, listQueryError("teams", err)
	}

	return page, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamDetails{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return TeamDetails{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	summaries, current, err := s.summaries(ctx)
	if err != nil {
		return TeamDetails{}, err
	}

	out := TeamDetails{TeamSummary: TeamSummary{Team: item}, Season: current}
	for _, summary := range summaries {
		if summary.Team.ID == teamID {
			out.TeamSummary = summary
			break
		}
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("list matches: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("list teams: %w", err)
	}

	index := indexTeams(teams)
	out.RecentMatches = matchViews(recentResults(matches, teamID, teamRecentMatches), index)
	out.UpcomingMatches = matchViews(upcomingFixtures(matches, teamID, teamUpcomingMatches), index)

	return out, nil
}

// summaries pairs every team with its row in the current season table.
func (s *TeamService) summaries(ctx context.Context) ([]TeamSummary, *season.Season, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list teams: %w", err)
	}

	current, err := resolveSeason(ctx, s.seasonRepo, CurrentSeasonAlias)
	if errors.Is(err, ErrNotFound) {
		out := make([]TeamSummary, 0, len(teams))
		for _, item := range teams {
			out = append(out, TeamSummary{Team: item, Row: standing.Row{TeamID: item.ID, TeamName: item.Name}})
		}
		return out, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	matches, err := s.matchRepo.ListBySeason(ctx, current.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list matches by season: %w", err)
	}

	table := buildSeasonTable(ctx, s.aggregator, s.logger, current.ID, teams, matches)
	index := indexTeams(teams)

	out := make([]TeamSummary, 0, len(teams))
	seen := make(map[string]struct{}, len(table.Rows))
	for _, row := range table.Rows {
		seen[row.TeamID] = struct{}{}
		out = append(out, TeamSummary{Team: index[row.TeamID], Row: row, Ranked: true})
	}
	for _, item := range teams {
		if _, ok := seen[item.ID]; !ok {
			out = append(out, TeamSummary{Team: item, Row: standing.Row{TeamID: item.ID, TeamName: item.Name}})
		}
	}

	return out, &current, nil
}

func indexTeams(teams []team.Team) map[string]team.Team {
	out := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		out[item.ID] = item
	}
	return out
}

// recentResults returns a team's last completed matches, most recent first.
func recentResults(matches []match.Match, teamID string, limit int) []match.Match {
	out := make([]match.Match, 0, limit)
	for _, m := range matches {
		if m.Involves(teamID) && m.IsCompleted() {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b match.Match) int {
		if c := b.MatchDate.Compare(a.MatchDate); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// upcomingFixtures returns a team's next scheduled matches, soonest first.
func upcomingFixtures(matches []match.Match, teamID string, limit int) []match.Match {
	out := make([]match.Match, 0, limit)
	for _, m := range matches {
		if m.Involves(teamID) && match.NormalizeStatus(string(m.Status)) == match.StatusScheduled {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b match.Match) int {
		if c := a.MatchDate.Compare(b.MatchDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
