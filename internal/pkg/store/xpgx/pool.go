package xpgx

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
)

// Querier is the subset of pgxpool.Pool the store needs. pgxmock satisfies it too.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Pool runs squirrel builders directly and scans results into structs.
type Pool interface {
	Querier
	Selectx(ctx context.Context, dst interface{}, sqlizer squirrel.Sqlizer) error
	Getx(ctx context.Context, dst interface{}, sqlizer squirrel.Sqlizer) error
	Execx(ctx context.Context, sqlizer squirrel.Sqlizer) (pgconn.CommandTag, error)
}

type pool struct {
	Querier
}

func New(q Querier) Pool {
	return &pool{Querier: q}
}

func (p *pool) Selectx(ctx context.Context, dst interface{}, sqlizer squirrel.Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, p.Querier, dst, query, args...)
}

func (p *pool) Getx(ctx context.Context, dst interface{}, sqlizer squirrel.Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, p.Querier, dst, query, args...)
}

func (p *pool) Execx(ctx context.Context, sqlizer squirrel.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return p.Exec(ctx, query, args...)
}

// Connect opens a pgx pool and pings it, retrying with exponential backoff.
func Connect(ctx context.Context, dsn string, retries uint64) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	var db *pgxpool.Pool
	operation := func() error {
		p, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return err
		}
		if err = p.Ping(ctx); err != nil {
			p.Close()
			logger.Warnf(ctx, "postgres ping failed: %s", err.Error())
			return err
		}
		db = p
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries), ctx)
	if err = backoff.Retry(operation, b); err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}
