package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	rows, err := selectRows[seasonTableModel](ctx, r.db, seasonBaseSelectBuilder().OrderBy("start_date", "public_id"), "seasons")
	if err != nil {
		return nil, err
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	row, ok, err := getByPublicID[seasonTableModel](ctx, r.db, seasonBaseSelectBuilder, "public_id", seasonID, "season")
	if err != nil || !ok {
		return season.Season{}, ok, err
	}
	return seasonFromRow(row), true, nil
}

func seasonBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(seasonColumns...).From("seasons").Where(qb.NotDeleted(""))
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:              row.PublicID,
		Name:            row.Name,
		CompetitionType: row.CompetitionType,
		StartDate:       row.StartDate.UTC(),
		EndDate:         nullTimePtr(row.EndDate),
		IsActive:        row.IsActive,
	}
}
