// Package comment implements the Comment repository using PostgreSQL.
// Lists are ordered newest first.
package comment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jacwu/toy-store/internal/adapter/postgres"
	"github.com/jacwu/toy-store/internal/domain"
)

const (
	table     = "comments"
	returning = "RETURNING id, toy_id, author, content, rating, created_at"
)

var columns = []string{"id", "toy_id", "author", "content", "rating", "created_at"}

type row struct {
	ID        int64     `db:"id"`
	ToyID     int64     `db:"toy_id"`
	Author    string    `db:"author"`
	Content   string    `db:"content"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		ToyID:     r.ToyID,
		Author:    r.Author,
		Content:   r.Content,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new comment repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

func (r *Repo) FindAll(ctx context.Context) ([]domain.Comment, error) {
	return r.list(ctx, postgres.Builder.Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *Repo) FindByToyID(ctx context.Context, toyID int64) ([]domain.Comment, error) {
	return r.list(ctx, postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"toy_id": toyID}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Comment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list comments: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]domain.Comment, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// FindByID returns domain.ErrNotFound when the comment does not exist.
func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get comment: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	c := rw.toDomain()
	return &c, nil
}

func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns("toy_id", "author", "content", "rating", "created_at").
		Values(c.ToyID, c.Author, c.Content, c.Rating, c.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create comment: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment for toy", c.ToyID)
	}

	created := rw.toDomain()
	return &created, nil
}

func (r *Repo) Update(ctx context.Context, id int64, params domain.CommentUpdateParams) (*domain.Comment, error) {
	set := map[string]any{}
	if params.Author != nil {
		set["author"] = *params.Author
	}
	if params.Content != nil {
		set["content"] = *params.Content
	}
	if params.Rating != nil {
		set["rating"] = *params.Rating
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
		return nil, fmt.Errorf("update comment: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	return postgres.Delete(ctx, r.q, table, id)
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q, table)
}
