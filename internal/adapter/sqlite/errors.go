package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/sqlscan"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jacwu/toy-store/internal/domain"
)

// mapError converts database/sql and SQLite errors to domain errors.
func mapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, sql.ErrNoRows) || sqlscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		case sqlite3lib.SQLITE_CONSTRAINT:
			// Extended codes off: fall back to the constraint kind in the message.
			msg := err.Error()
			if strings.Contains(msg, "UNIQUE constraint failed") {
				return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
			}
			if strings.Contains(msg, "CHECK constraint failed") {
				return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
			}
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

func count(ctx context.Context, db *sql.DB, table string) (int, error) {
	query, args, err := builder.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("count %s: build query: %w", table, err)
	}

	var n int
	if err := querierFromCtx(ctx, db).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func remove(ctx context.Context, db *sql.DB, table string, id int64) (bool, error) {
	query, args, err := builder.Delete(table).Where("id = ?", id).ToSql()
	if err != nil {
		return false, fmt.Errorf("delete from %s: build query: %w", table, err)
	}

	res, err := querierFromCtx(ctx, db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete from %s %d: %w", table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete from %s %d: %w", table, id, err)
	}
	return n > 0, nil
}
