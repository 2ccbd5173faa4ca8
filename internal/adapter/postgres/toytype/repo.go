// Package toytype implements the ToyType repository using PostgreSQL.
package toytype

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jacwu/toy-store/internal/adapter/postgres"
	"github.com/jacwu/toy-store/internal/domain"
)

const table = "toy_types"

var columns = []string{"id", "name", "description", "icon"}

type row struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Icon        *string `db:"icon"`
}

func (r row) toDomain() domain.ToyType {
	return domain.ToyType{ID: r.ID, Name: r.Name, Description: r.Description, Icon: r.Icon}
}

// Repo provides toy type persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new toy type repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// FindAll returns every toy type in id order.
func (r *Repo) FindAll(ctx context.Context) ([]domain.ToyType, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("list toy types: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list toy types: %w", err)
	}

	out := make([]domain.ToyType, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// FindByID returns domain.ErrNotFound when the toy type does not exist.
func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.ToyType, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get toy type: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "toy type", id)
	}

	tt := rw.toDomain()
	return &tt, nil
}

func (r *Repo) Create(ctx context.Context, tt domain.ToyType) (*domain.ToyType, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns("name", "description", "icon").
		Values(tt.Name, tt.Description, tt.Icon).
		Suffix("RETURNING id, name, description, icon").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create toy type: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, fmt.Errorf("create toy type: %w", err)
	}

	created := rw.toDomain()
	return &created, nil
}

// Update applies the non-nil fields of params. An empty update returns the
// stored row unchanged.
func (r *Repo) Update(ctx context.Context, id int64, params domain.ToyTypeUpdateParams) (*domain.ToyType, error) {
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

	query, args, err := postgres.Builder.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, description, icon").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update toy type: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "toy type", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// Delete reports whether a toy type was removed. Toys that reference it are
// left in place.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete(ctx, r.q, table, id)
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q, table)
}
