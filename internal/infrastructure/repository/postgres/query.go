package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

// getByPublicID loads one row by public id. When the pooler rejects the
// parameterised statement it retries once with the id inlined.
func getByPublicID[M any](ctx context.Context, db *sqlx.DB, base func() *qb.SelectBuilder, column, id, entity string) (M, bool, error) {
	var row M

	query, args, err := base().Where(qb.Eq(column, id)).Limit(1).ToSQL()
	if err != nil {
		return row, false, fmt.Errorf("build get %s query: %w", entity, err)
	}

	err = db.GetContext(ctx, &row, query, args...)
	if needsLiteralFallback(err) {
		query, args, err = base().Where(qb.EqLiteral(column, id)).Limit(1).ToSQL()
		if err != nil {
			return row, false, fmt.Errorf("build get %s literal fallback query: %w", entity, err)
		}
		err = db.GetContext(ctx, &row, query, args...)
	}
	if err != nil {
		if isNotFound(err) {
			return row, false, nil
		}
		return row, false, fmt.Errorf("get %s: %w", entity, err)
	}

	return row, true, nil
}

func selectRows[M any](ctx context.Context, db *sqlx.DB, builder *qb.SelectBuilder, entity string) ([]M, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", entity, err)
	}

	var rows []M
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", entity, err)
	}
	return rows, nil
}
