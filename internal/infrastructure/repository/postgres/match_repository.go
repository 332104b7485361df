package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx, matchBaseSelectBuilder())
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID string) ([]match.Match, error) {
	return r.list(ctx, matchBaseSelectBuilder().Where(qb.Eq("season_public_id", seasonID)))
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	row, ok, err := getByPublicID[matchTableModel](ctx, r.db, matchBaseSelectBuilder, "public_id", matchID, "match")
	if err != nil || !ok {
		return match.Match{}, ok, err
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) list(ctx context.Context, builder *qb.SelectBuilder) ([]match.Match, error) {
	rows, err := selectRows[matchTableModel](ctx, r.db, builder.OrderBy("match_date", "public_id"), "matches")
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(matchColumns...).From("matches").Where(qb.NotDeleted(""))
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:              row.PublicID,
		SeasonID:        row.SeasonID,
		Matchday:        row.Matchday,
		HomeTeamID:      row.HomeTeamID,
		AwayTeamID:      row.AwayTeamID,
		HomeScore:       nullInt64ToIntPtr(row.HomeScore),
		AwayScore:       nullInt64ToIntPtr(row.AwayScore),
		Status:          match.NormalizeStatus(row.Status),
		MatchDate:       row.MatchDate.UTC(),
		Venue:           row.Venue,
		Referee:         row.Referee,
		CompetitionType: row.CompetitionType,
	}
}
