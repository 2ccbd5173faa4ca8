package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jacwu/toy-store/internal/domain"
)

var toyTypeColumns = []string{"id", "name", "description", "icon"}

type toyTypeRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Icon        *string `db:"icon"`
}

func (r toyTypeRow) toDomain() domain.ToyType {
	return domain.ToyType{ID: r.ID, Name: r.Name, Description: r.Description, Icon: r.Icon}
}

// ToyTypeRepo persists toy types in the toy_types table.
type ToyTypeRepo struct {
	db *sql.DB
}

func NewToyTypeRepo(db *sql.DB) *ToyTypeRepo {
	return &ToyTypeRepo{db: db}
}

func (r *ToyTypeRepo) FindAll(ctx context.Context) ([]domain.ToyType, error) {
	query, args, err := builder.Select(toyTypeColumns...).From("toy_types").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("list toy types: build query: %w", err)
	}

	var rows []toyTypeRow
	if err := sqlscan.Select(ctx, querierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list toy types: %w", err)
	}

	out := make([]domain.ToyType, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (r *ToyTypeRepo) FindByID(ctx context.Context, id int64) (*domain.ToyType, error) {
	query, args, err := builder.Select(toyTypeColumns...).From("toy_types").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get toy type: build query: %w", err)
	}

	var rw toyTypeRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "toy type", id)
	}

	tt := rw.toDomain()
	return &tt, nil
}

func (r *ToyTypeRepo) Create(ctx context.Context, tt domain.ToyType) (*domain.ToyType, error) {
	query, args, err := builder.Insert("toy_types").
		Columns("name", "description", "icon").
		Values(tt.Name, tt.Description, tt.Icon).
		Suffix("RETURNING id, name, description, icon").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create toy type: build query: %w", err)
	}

	var rw toyTypeRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, fmt.Errorf("create toy type: %w", err)
	}

	created := rw.toDomain()
	return &created, nil
}

func (r *ToyTypeRepo) Update(ctx context.Context, id int64, params domain.ToyTypeUpdateParams) (*domain.ToyType, error) {
	set := map[string]any{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		set["description"] = *params.Description
	}
	if params.Icon != nil {
		set["icon"] = *params.Icon
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.Update("toy_types").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, description, icon").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update toy type: build query: %w", err)
	}

	var rw toyTypeRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "toy type", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

func (r *ToyTypeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, r.db, "toy_types", id)
}

func (r *ToyTypeRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "toy_types")
}
