package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// PoolConfig sizes the database/sql pool behind the bun handle. Zero values leave the
// database/sql defaults in place.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// SearchPath is sent as the search_path startup parameter on every new connection.
	SearchPath string
}

func (p PoolConfig) applyTo(sqlDB *sql.DB) {
	if p.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	}
	if p.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	}
	if p.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	}
	if p.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)
	}
}

// Open connects through the pgx stdlib driver and returns a bun handle on the postgres
// dialect once the server answers a ping.
func Open(ctx context.Context, databaseURL string, pool PoolConfig) (*bun.DB, error) {
	connCfg, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if pool.SearchPath != "" {
		connCfg.RuntimeParams["search_path"] = pool.SearchPath
	}

	sqlDB := stdlib.OpenDB(*connCfg)
	pool.applyTo(sqlDB)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return bun.NewDB(sqlDB, pgdialect.New()), nil
}

func Close(db *bun.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
