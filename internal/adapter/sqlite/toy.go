package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jacwu/toy-store/internal/domain"
)

const toyReturning = "RETURNING id, name, description, detail_description, price, toy_type_id"

var toyColumns = []string{"id", "name", "description", "detail_description", "price", "toy_type_id"}

type toyRow struct {
	ID                int64   `db:"id"`
	Name              string  `db:"name"`
	Description       string  `db:"description"`
	DetailDescription string  `db:"detail_description"`
	Price             float64 `db:"price"`
	ToyTypeID         int64   `db:"toy_type_id"`
}

func (r toyRow) toDomain() domain.Toy {
	return domain.Toy{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		DetailDescription: r.DetailDescription,
		Price:             r.Price,
		ToyTypeID:         r.ToyTypeID,
	}
}

// ToyRepo persists toys in the toys table.
type ToyRepo struct {
	db *sql.DB
}

func NewToyRepo(db *sql.DB) *ToyRepo {
	return &ToyRepo{db: db}
}

func (r *ToyRepo) FindAll(ctx context.Context) ([]domain.Toy, error) {
	return r.list(ctx, builder.Select(toyColumns...).From("toys").OrderBy("id"))
}

func (r *ToyRepo) FindByToyTypeID(ctx context.Context, toyTypeID int64) ([]domain.Toy, error) {
	return r.list(ctx, builder.Select(toyColumns...).From("toys").
		Where(sq.Eq{"toy_type_id": toyTypeID}).
		OrderBy("id"))
}

func (r *ToyRepo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Toy, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list toys: build query: %w", err)
	}

	var rows []toyRow
	if err := sqlscan.Select(ctx, querierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list toys: %w", err)
	}

	out := make([]domain.Toy, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (r *ToyRepo) FindByID(ctx context.Context, id int64) (*domain.Toy, error) {
	query, args, err := builder.Select(toyColumns...).From("toys").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get toy: build query: %w", err)
	}

	var rw toyRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "toy", id)
	}

	t := rw.toDomain()
	return &t, nil
}

func (r *ToyRepo) Create(ctx context.Context, t domain.Toy) (*domain.Toy, error) {
	query, args, err := builder.Insert("toys").
		Columns("name", "description", "detail_description", "price", "toy_type_id").
		Values(t.Name, t.Description, t.DetailDescription, t.Price, t.ToyTypeID).
		Suffix(toyReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create toy: build query: %w", err)
	}

	var rw toyRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "toy", t.Name)
	}

	created := rw.toDomain()
	return &created, nil
}

func (r *ToyRepo) Update(ctx context.Context, id int64, params domain.ToyUpdateParams) (*domain.Toy, error) {
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

	query, args, err := builder.Update("toys").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(toyReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update toy: build query: %w", err)
	}

	var rw toyRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "toy", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

func (r *ToyRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, r.db, "toys", id)
}

func (r *ToyRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "toys")
}
