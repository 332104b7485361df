// Package database opens the traced Postgres pool shared by the
// repositories.
package database

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	driverName  = "postgres"
	pingTimeout = 5 * time.Second
)

type Options struct {
	URL                         string
	DisablePreparedBinaryResult bool
	MaxOpenConns                int
	MaxIdleConns                int
	ConnMaxLifetime             time.Duration
}

// Open connects with otelsqlx so every statement becomes a span, then
// pings once so a bad url fails at startup.
func Open(ctx context.Context, opts Options) (*sqlx.DB, error) {
	raw := strings.TrimSpace(opts.URL)
	if raw == "" {
		return nil, crerr.New("database url is required")
	}
	dsn := NormalizeURL(raw, opts.DisablePreparedBinaryResult)

	db, err := otelsqlx.Open(driverName, dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(NameFromURL(dsn)),
		otelsql.WithQueryFormatter(FormatQueryForTrace),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "open postgres")
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	lifetime := opts.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = 30 * time.Minute
	}
	db.SetConnMaxLifetime(lifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "ping postgres")
	}

	return db, nil
}
