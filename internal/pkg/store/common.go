package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
)

const (
	tableWards      = "wards"
	tableRoads      = "roads"
	tableVendors    = "vendors"
	tableProjects   = "projects"
	tableActivities = "activities"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

//go:embed schema.sql
var schema string

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if pgxscan.NotFound(err) {
		return constants.ErrDBNotFound
	}
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, constants.ErrAlreadyExists)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", pgErr.ConstraintName, constants.ErrReferenced)
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Migrate creates the tables if they are missing.
func Migrate(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *store) exists(ctx context.Context, table string, id int64) (bool, error) {
	query := builder().Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix(")")

	var found bool
	if err := s.pool.Getx(ctx, &found, query); err != nil {
		return false, err
	}
	return found, nil
}

// deleteUnreferenced deletes the row unless a project still points at it through fkColumn.
func (s *store) deleteUnreferenced(ctx context.Context, table, fkColumn string, id int64) error {
	query := builder().Delete(table).
		Where(squirrel.Eq{"id": id}).
		Where("NOT EXISTS (SELECT 1 FROM "+tableProjects+" WHERE "+fkColumn+" = ?)", id)

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	found, err := s.exists(ctx, table, id)
	if err != nil {
		return wrapErr(err)
	}
	if !found {
		return constants.ErrDBNotFound
	}
	return constants.ErrReferenced
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
