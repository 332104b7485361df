package rest

import (
	"context"
	"strings"

	"github.com/riskibarqy/league-portal/external/supabase"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type SeasonRepository struct {
	client Selector
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	var rows []seasonRow
	if err := r.client.Select(ctx, tableSeasons, supabase.Query{Order: []string{"start_date.asc", "id.asc"}}, &rows); err != nil {
		return nil, err
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	row, ok, err := selectOne[seasonRow](ctx, r.client, tableSeasons, "", seasonID)
	if err != nil || !ok {
		return season.Season{}, ok, err
	}
	return seasonFromRow(row), true, nil
}

func seasonFromRow(row seasonRow) season.Season {
	start, _ := parseTime(row.StartDate)
	return season.Season{
		ID:              row.ID,
		Name:            row.Name,
		CompetitionType: row.CompetitionType,
		StartDate:       start,
		EndDate:         parseTimePtr(row.EndDate),
		IsActive:        row.IsActive,
	}
}

type TeamRepository struct {
	client Selector
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamRow
	if err := r.client.Select(ctx, tableTeams, supabase.Query{Order: []string{"name.asc", "id.asc"}}, &rows); err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	row, ok, err := selectOne[teamRow](ctx, r.client, tableTeams, "", teamID)
	if err != nil || !ok {
		return team.Team{}, ok, err
	}
	return teamFromRow(row), true, nil
}

func teamFromRow(row teamRow) team.Team {
	return team.Team{
		ID:           row.ID,
		Name:         row.Name,
		Abbreviation: row.Abbreviation,
		LogoURL:      row.LogoURL,
		HomeVenue:    row.HomeVenue,
		FoundedYear:  derefInt(row.FoundedYear),
		IsActive:     row.IsActive,
	}
}

type MatchRepository struct {
	client Selector
	logger *logging.Logger
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx, nil)
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID string) ([]match.Match, error) {
	return r.list(ctx, []supabase.Filter{supabase.Eq("season_id", seasonID)})
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	row, ok, err := selectOne[matchRow](ctx, r.client, tableMatches, "", matchID)
	if err != nil || !ok {
		return match.Match{}, ok, err
	}
	return r.fromRow(ctx, row), true, nil
}

func (r *MatchRepository) list(ctx context.Context, filters []supabase.Filter) ([]match.Match, error) {
	var rows []matchRow
	err := r.client.Select(ctx, tableMatches, supabase.Query{
		Filters: filters,
		Order:   []string{"match_date.asc", "id.asc"},
	}, &rows)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.fromRow(ctx, row))
	}
	return out, nil
}

// fromRow keeps rows with an unreadable date; they sort first and the
// standings still count them.
func (r *MatchRepository) fromRow(ctx context.Context, row matchRow) match.Match {
	date, ok := parseTime(row.MatchDate)
	if !ok {
		r.logger.WarnContext(ctx, "match has unreadable date", "match_id", row.ID, "match_date", row.MatchDate)
	}
	return match.Match{
		ID:              row.ID,
		SeasonID:        row.SeasonID,
		Matchday:        row.Matchday,
		HomeTeamID:      row.HomeTeamID,
		AwayTeamID:      row.AwayTeamID,
		HomeScore:       copyInt(row.HomeScore),
		AwayScore:       copyInt(row.AwayScore),
		Status:          match.NormalizeStatus(row.Status),
		MatchDate:       date,
		Venue:           row.Venue,
		Referee:         row.Referee,
		CompetitionType: row.CompetitionType,
	}
}

type PlayerRepository struct {
	client Selector
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	var rows []playerRow
	if err := r.client.Select(ctx, tableUsers, supabase.Query{Select: playerSelect, Order: []string{"id.asc"}}, &rows); err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	row, ok, err := selectOne[playerRow](ctx, r.client, tableUsers, playerSelect, playerID)
	if err != nil || !ok {
		return player.Player{}, ok, err
	}
	return playerFromRow(row), true, nil
}

func playerFromRow(row playerRow) player.Player {
	out := player.Player{
		ID:                row.ID,
		Username:          row.Username,
		Email:             strings.TrimSpace(row.Email),
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		AvatarURL:         row.AvatarURL,
		Country:           row.Country,
		DateOfBirth:       parseTimePtr(row.DateOfBirth),
		PreferredPosition: row.PreferredPosition,
		TeamID:            derefString(row.TeamID),
		IsActive:          row.IsActive,
	}
	if row.Team != nil {
		out.TeamName = row.Team.Name
		out.TeamAbbreviation = row.Team.Abbreviation
	}
	if row.Stats != nil {
		out.Stats = player.Stats{
			Goals:         row.Stats.Goals,
			Assists:       row.Stats.Assists,
			MatchesPlayed: row.Stats.MatchesPlayed,
			Rating:        row.Stats.Rating,
			Wins:          row.Stats.Wins,
			Losses:        row.Stats.Losses,
		}
	}
	return out
}
