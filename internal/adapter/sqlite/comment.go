package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jacwu/toy-store/internal/domain"
)

const commentReturning = "RETURNING id, toy_id, author, content, rating, created_at"

var commentColumns = []string{"id", "toy_id", "author", "content", "rating", "created_at"}

// commentRow stores created_at as Unix milliseconds.
type commentRow struct {
	ID        int64  `db:"id"`
	ToyID     int64  `db:"toy_id"`
	Author    string `db:"author"`
	Content   string `db:"content"`
	Rating    int    `db:"rating"`
	CreatedAt int64  `db:"created_at"`
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		ToyID:     r.ToyID,
		Author:    r.Author,
		Content:   r.Content,
		Rating:    r.Rating,
		CreatedAt: fromMillis(r.CreatedAt),
	}
}

// CommentRepo persists comments in the comments table. Lists are newest first.
type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) FindAll(ctx context.Context) ([]domain.Comment, error) {
	return r.list(ctx, builder.Select(commentColumns...).From("comments").
		OrderBy("created_at DESC", "id DESC"))
}

func (r *CommentRepo) FindByToyID(ctx context.Context, toyID int64) ([]domain.Comment, error) {
	return r.list(ctx, builder.Select(commentColumns...).From("comments").
		Where(sq.Eq{"toy_id": toyID}).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *CommentRepo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Comment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list comments: build query: %w", err)
	}

	var rows []commentRow
	if err := sqlscan.Select(ctx, querierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]domain.Comment, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (r *CommentRepo) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query, args, err := builder.Select(commentColumns...).From("comments").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("get comment: build query: %w", err)
	}

	var rw commentRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "comment", id)
	}

	c := rw.toDomain()
	return &c, nil
}

func (r *CommentRepo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	query, args, err := builder.Insert("comments").
		Columns("toy_id", "author", "content", "rating", "created_at").
		Values(c.ToyID, c.Author, c.Content, c.Rating, toMillis(c.CreatedAt)).
		Suffix(commentReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create comment: build query: %w", err)
	}

	var rw commentRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "comment for toy", c.ToyID)
	}

	created := rw.toDomain()
	return &created, nil
}

func (r *CommentRepo) Update(ctx context.Context, id int64, params domain.CommentUpdateParams) (*domain.Comment, error) {
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

	query, args, err := builder.Update("comments").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(commentReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update comment: build query: %w", err)
	}

	var rw commentRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "comment", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

func (r *CommentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, r.db, "comments", id)
}

func (r *CommentRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "comments")
}
