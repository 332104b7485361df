// Package rest adapts the hosted PostgREST tables to the domain
// repositories.
package rest

import (
	"context"

	"github.com/riskibarqy/league-portal/external/supabase"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

// Selector is the part of the supabase client the repositories need.
type Selector interface {
	Select(ctx context.Context, table string, q supabase.Query, target any) error
}

const (
	tableSeasons    = "seasons"
	tableTeams      = "teams"
	tableMatches    = "matches"
	tableUsers      = "users"
	tableFreeAgents = "free_agents"
	tableNews       = "news_articles"
	tableAwards     = "awards"

	playerSelect = "*,team:teams(name,abbreviation,logo_url),stats:player_stats(goals,assists,matches_played,rating,wins,losses)"
	awardSelect  = "*,winners:award_winners(name,team,value,avatar_url,season,is_current,awarded_at)"
)

// Repositories bundles every domain repository backed by one client.
type Repositories struct {
	Seasons    *SeasonRepository
	Teams      *TeamRepository
	Matches    *MatchRepository
	Players    *PlayerRepository
	FreeAgents *FreeAgentRepository
	News       *NewsRepository
	Awards     *AwardRepository
}

func NewRepositories(client Selector, logger *logging.Logger) Repositories {
	if logger == nil {
		logger = logging.Default()
	}
	return Repositories{
		Seasons:    &SeasonRepository{client: client},
		Teams:      &TeamRepository{client: client},
		Matches:    &MatchRepository{client: client, logger: logger},
		Players:    &PlayerRepository{client: client},
		FreeAgents: &FreeAgentRepository{client: client},
		News:       &NewsRepository{client: client, logger: logger},
		Awards:     &AwardRepository{client: client},
	}
}

// selectOne reads at most one row by id.
func selectOne[R any](ctx context.Context, client Selector, table, selectExpr, id string) (R, bool, error) {
	var rows []R
	err := client.Select(ctx, table, supabase.Query{
		Select:  selectExpr,
		Filters: []supabase.Filter{supabase.Eq("id", id)},
		Limit:   1,
	}, &rows)
	if err != nil {
		var zero R
		return zero, false, err
	}
	if len(rows) == 0 {
		var zero R
		return zero, false, nil
	}
	return rows[0], true, nil
}
