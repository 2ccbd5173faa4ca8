// Package toy implements the Toy repository using PostgreSQL.
package toy

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jacwu/toy-store/internal/adapter/postgres"
	"github.com/jacwu/toy-store/internal/domain"
)

const (
	table     = "toys"
	returning = "RETURNING id, name, description, detail_description, price, toy_type_id"
)

var columns = []string{"id", "name", "description", "detail_description", "price", "toy_type_id"}

type row struct {
	ID                int64   `db:"id"`
	Name              string  `db:"name"`
	Description       string  `db:"description"`
	DetailDescription string  `db:"detail_description"`
	Price             float64 `db:"price"`
	ToyTypeID         int64   `db:"toy_type_id"`
}

func (r row) toDomain() domain.Toy {
	return domain.Toy{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		DetailDescription: r.DetailDescription,
		Price:             r.Price,
		ToyTypeID:         r.ToyTypeID,
	}
}

// Repo provides toy persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new toy repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// FindAll returns every toy in id order.
func (r *Repo) FindAll(ctx context.Context) ([]domain.Toy, error) {
	return r.list(ctx, postgres.Builder.Select(columns...).From(table).OrderBy("id"))
}

// FindByToyTypeID returns the toys of one type in id order.
func (r *Repo) FindByToyTypeID(ctx context.Context, toyTypeID int64) ([]domain.Toy, error) {
	return r.list(ctx, postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"toy_type_id": toyTypeID}).
		OrderBy("id"))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Toy, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list toys: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list toys: %w", err)
	}

	out := make([]domain.Toy, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// FindByID returns domain.ErrNotFound when the toy does not exist.
func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Toy, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get toy: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "toy", id)
	}

	t := rw.toDomain()
	return &t, nil
}

func (r *Repo) Create(ctx context.Context, t domain.Toy) (*domain.Toy, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns("name", "description", "detail_description", "price", "toy_type_id").
		Values(t.Name, t.Description, t.DetailDescription, t.Price, t.ToyTypeID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create toy: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, fmt.Errorf("create toy: %w", err)
	}

	created := rw.toDomain()
	return &created, nil
}

func (r *Repo) Update(ctx context.Context, id int64, params domain.ToyUpdateParams) (*domain.Toy, error) {
	set := map[string]any{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Description != nil {
		set["description"] = *params.Description
	}
	if params.DetailDescription != nil {
		set["detail_description"] = *params.DetailDescription
	}
	if params.Price != nil {
		set["price"] = *params.Price
	}
	if params.ToyTypeID != nil {
		set["toy_type_id"] = *params.ToyTypeID
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	query, args, err := postgres.Builder.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update toy: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "toy", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// Delete reports whether a toy was removed. Its comments are kept.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete(ctx, r.q, table, id)
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q, table)
}
