package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// List returns inactive clubs too: their past matches still count.
func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	rows, err := selectRows[teamTableModel](ctx, r.db, teamBaseSelectBuilder().OrderBy("name", "public_id"), "teams")
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	row, ok, err := getByPublicID[teamTableModel](ctx, r.db, teamBaseSelectBuilder, "public_id", teamID, "team")
	if err != nil || !ok {
		return team.Team{}, ok, err
	}
	return teamFromRow(row), true, nil
}

func teamBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(teamColumns...).From("teams").Where(qb.NotDeleted(""))
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:           row.PublicID,
		Name:         row.Name,
		Abbreviation: row.Abbreviation,
		LogoURL:      row.LogoURL,
		HomeVenue:    row.HomeVenue,
		FoundedYear:  nullInt64ToInt(row.FoundedYear),
		IsActive:     row.IsActive,
	}
}
