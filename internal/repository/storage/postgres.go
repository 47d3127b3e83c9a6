package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// register the postgres driver with database/sql.
	_ "github.com/lib/pq"
)

type PostgresOptions struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewPostgres(ctx context.Context, opts PostgresOptions) (*sql.DB, error) {
	conn, err := sql.Open("postgres", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	conn.SetMaxOpenConns(opts.MaxOpenConns)
	conn.SetMaxIdleConns(opts.MaxIdleConns)
	conn.SetConnMaxLifetime(opts.ConnMaxLifetime)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return conn, nil
}
