package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/domain/user"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

const (
	dashboardUpcomingMatches = 3
	dashboardRecentResults   = 5
)

// Dashboard is the signed-in member's home screen.
type Dashboard struct {
	Player          player.Player
	WinRate         float64
	Team            *team.Team
	Season          *season.Season
	Standing        *standing.Row
	UpcomingMatches []MatchView
	RecentResults   []MatchView
}

type DashboardService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	aggregator *standing.Aggregator
	logger     *logging.Logger
	now        func() time.Time
}

func NewDashboardService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	aggregator *standing.Aggregator,
	logger *logging.Logger,
) *DashboardService {
	if aggregator == nil {
		aggregator = &standing.Aggregator{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DashboardService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		aggregator: aggregator,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *DashboardService) Get(ctx context.Context, principal user.Principal) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	if strings.TrimSpace(principal.UserID) == "" {
		return Dashboard{}, fmt.Errorf("%w: missing user", ErrUnauthorized)
	}

	member, err := s.findPlayer(ctx, principal)
	if err != nil {
		return Dashboard{}, err
	}

	out := Dashboard{
		Player:          member,
		WinRate:         member.Stats.WinRate(),
		UpcomingMatches: make([]MatchView, 0),
		RecentResults:   make([]MatchView, 0),
	}
	if member.TeamID == "" {
		return out, nil
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list teams: %w", err)
	}
	index := indexTeams(teams)
	if item, ok := index[member.TeamID]; ok {
		out.Team = &item
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list matches: %w", err)
	}

	now := s.now()
	future := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if !m.MatchDate.Before(now) {
			future = append(future, m)
		}
	}
	out.UpcomingMatches = matchViews(upcomingFixtures(future, member.TeamID, dashboardUpcomingMatches), index)
	out.RecentResults = matchViews(recentResults(matches, member.TeamID, dashboardRecentResults), index)

	current, err := resolveSeason(ctx, s.seasonRepo, CurrentSeasonAlias)
	if errors.Is(err, ErrNotFound) {
		return out, nil
	}
	if err != nil {
		return Dashboard{}, err
	}
	out.Season = &current

	table := buildSeasonTable(ctx, s.aggregator, s.logger, current.ID, teams, matchesOfSeason(matches, current.ID))
	if row, ok := table.Row(member.TeamID); ok {
		out.Standing = &row
	}

	return out, nil
}

// findPlayer matches the principal by user id, then by email.
func (s *DashboardService) findPlayer(ctx context.Context, principal user.Principal) (player.Player, error) {
	item, exists, err := s.playerRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if exists {
		return item, nil
	}

	email := strings.TrimSpace(principal.Email)
	if email != "" {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			return player.Player{}, fmt.Errorf("list players: %w", err)
		}
		for _, candidate := range items {
			if strings.EqualFold(candidate.Email, email) {
				return candidate, nil
			}
		}
	}

	return player.Player{}, fmt.Errorf("%w: no player profile for user=%s", ErrNotFound, principal.UserID)
}
