package postgres

import (
	"context"
	"fmt"
)

// Count returns the number of rows in table.
func Count(ctx context.Context, q Querier, table string) (int, error) {
	query, args, err := Builder.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("count %s: build query: %w", table, err)
	}

	var n int
	if err := QuerierFromCtx(ctx, q).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Delete removes rows of table matching id and reports whether any existed.
func Delete(ctx context.Context, q Querier, table string, id int64) (bool, error) {
	query, args, err := Builder.Delete(table).Where("id = ?", id).ToSql()
	if err != nil {
		return false, fmt.Errorf("delete from %s: build query: %w", table, err)
	}

	tag, err := QuerierFromCtx(ctx, q).Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete from %s %d: %w", table, id, err)
	}
	return tag.RowsAffected() > 0, nil
}
