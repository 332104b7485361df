package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"golang.org/x/text/language"
)

// MatchView is a match with both participants resolved. A participant that
// is not in the team store keeps only its id.
type MatchView struct {
	Match    match.Match
	HomeTeam team.Team
	AwayTeam team.Team
}

type MatchService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
	schema     *listquery.Schema[MatchView]
}

func NewMatchService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	schema *listquery.Schema[MatchView],
) *MatchService {
	if schema == nil {
		schema = matchSchema(language.English)
	}

	return &MatchService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		schema:     schema,
	}
}

// ListMatches lists matches of one season, or of every season when seasonID
// is empty. The status category accepts "upcoming" for scheduled matches.
func (s *MatchService) ListMatches(ctx context.Context, seasonID string, query listquery.Query) (listquery.Page[MatchView], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	var (
		matches []match.Match
		err     error
	)
	if strings.TrimSpace(seasonID) == "" {
		matches, err = s.matchRepo.List(ctx)
		if err != nil {
			return listquery.Page[MatchView]{}, fmt.Errorf("list matches: %w", err)
		}
	} else {
		item, err := resolveSeason(ctx, s.seasonRepo, seasonID)
		if err != nil {
			return listquery.Page[MatchView]{}, err
		}
		matches, err = s.matchRepo.ListBySeason(ctx, item.ID)
		if err != nil {
			return listquery.Page[MatchView]{}, fmt.Errorf("list matches by season: %w", err)
		}
	}

	views, err := s.views(ctx, matches)
	if err != nil {
		return listquery.Page[MatchView]{}, err
	}

	query.Category = matchStatusCategory(query.Category)
	page, err := s.schema.Apply(views, query)
	if err != nil {
		return listquery.Page[MatchView]{}, listQueryError("matches", err)
	}

	return page, nil
}

// ListLive returns matches in progress, earliest kick-off first.
func (s *MatchService) ListLive(ctx context.Context) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListLive")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	live := make([]match.Match, 0)
	for _, m := range matches {
		if m.IsLive() {
			live = append(live, m)
		}
	}
	slices.SortStableFunc(live, func(a, b match.Match) int {
		if c := a.MatchDate.Compare(b.MatchDate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return s.views(ctx, live)
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchView{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchView{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return MatchView{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	views, err := s.views(ctx, []match.Match{item})
	if err != nil {
		return MatchView{}, err
	}

	return views[0], nil
}

func (s *MatchService) views(ctx context.Context, matches []match.Match) ([]MatchView, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return matchViews(matches, indexTeams(teams)), nil
}

func matchViews(matches []match.Match, teams map[string]team.Team) []MatchView {
	out := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchView{
			Match:    m,
			HomeTeam: teamOrStub(teams, m.HomeTeamID),
			AwayTeam: teamOrStub(teams, m.AwayTeamID),
		})
	}
	return out
}

func teamOrStub(teams map[string]team.Team, teamID string) team.Team {
	if item, ok := teams[teamID]; ok {
		return item
	}
	return team.Team{ID: teamID}
}

func matchStatusCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, listquery.CategoryAll) {
		return category
	}
	return string(match.NormalizeStatus(category))
}
