package postgres

import (
	"context"
	"fmt"

	"cashback-catalog-service/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Pool is the subset of pgxpool.Pool the repositories use. Satisfied by
// *pgxpool.Pool in production and by pgxmock pools in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool creates a PostgreSQL connection pool using pgx.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("dbname", cfg.DBName).
		Int32("max_conns", cfg.MaxConns).
		Msg("PostgreSQL connection pool established")

	return pool, nil
}

// Migrate creates the catalog tables when they do not exist yet. The seq
// column records insertion order, which the rendered view preserves.
func Migrate(ctx context.Context, pool Pool) error {
	const schema = `
CREATE TABLE IF NOT EXISTS merchants (
	id                 TEXT PRIMARY KEY,
	banner_img_url     TEXT NOT NULL DEFAULT '',
	merchant_image_url TEXT NOT NULL DEFAULT '',
	name               TEXT NOT NULL,
	merchant_days      TEXT NOT NULL DEFAULT '',
	about_text         TEXT NOT NULL DEFAULT '',
	seq                BIGSERIAL
);
CREATE TABLE IF NOT EXISTS offers (
	id                     TEXT PRIMARY KEY,
	merchant_id            TEXT NOT NULL,
	amount_ratio           DOUBLE PRECISION,
	original_offer_amount  TEXT NOT NULL DEFAULT '',
	description            TEXT NOT NULL,
	end_date               TEXT NOT NULL DEFAULT '',
	cashback_code          TEXT NOT NULL DEFAULT '',
	available              BOOLEAN NOT NULL DEFAULT FALSE,
	conditions             JSONB NOT NULL DEFAULT '{}',
	seq                    BIGSERIAL
);`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrating catalog schema: %w", err)
	}
	return nil
}
