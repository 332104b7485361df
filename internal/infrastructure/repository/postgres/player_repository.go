package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	rows, err := selectRows[playerTableModel](ctx, r.db, playerBaseSelectBuilder().OrderBy("u.public_id"), "players")
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	row, ok, err := getByPublicID[playerTableModel](ctx, r.db, playerBaseSelectBuilder, "u.public_id", playerID, "player")
	if err != nil || !ok {
		return player.Player{}, ok, err
	}
	return playerFromRow(row), true, nil
}

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(playerColumns...).
		From("users u").
		LeftJoin("teams t", "t.public_id = u.team_public_id AND t.deleted_at IS NULL").
		LeftJoin("player_stats ps", "ps.user_public_id = u.public_id").
		Where(qb.NotDeleted("u"))
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:                row.PublicID,
		Username:          row.Username,
		Email:             row.Email,
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		AvatarURL:         row.AvatarURL,
		Country:           row.Country,
		DateOfBirth:       nullTimePtr(row.DateOfBirth),
		PreferredPosition: row.PreferredPosition,
		TeamID:            nullString(row.TeamID),
		TeamName:          nullString(row.TeamName),
		TeamAbbreviation:  nullString(row.TeamAbbreviation),
		IsActive:          row.IsActive,
		Stats: player.Stats{
			Goals:         row.Goals,
			Assists:       row.Assists,
			MatchesPlayed: row.MatchesPlayed,
			Rating:        row.Rating.Float64,
			Wins:          row.Wins,
			Losses:        row.Losses,
		},
	}
}
