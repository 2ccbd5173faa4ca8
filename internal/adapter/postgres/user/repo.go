// Package user implements the User repository using PostgreSQL.
// Username uniqueness is enforced by a UNIQUE constraint.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jacwu/toy-store/internal/adapter/postgres"
	"github.com/jacwu/toy-store/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "password_hash"}

type row struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

func (r row) toDomain() domain.User {
	return domain.User{ID: r.ID, Username: r.Username, PasswordHash: r.PasswordHash}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

func (r *Repo) FindAll(ctx context.Context) ([]domain.User, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("list users: build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.User, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// FindByUsername returns domain.ErrNotFound when no account has the name.
func (r *Repo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get user: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	u := rw.toDomain()
	return &u, nil
}

// Create returns domain.ErrAlreadyExists when the username is taken.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns("username", "password_hash").
		Values(u.Username, u.PasswordHash).
		Suffix("RETURNING id, username, password_hash").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create user: build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	created := rw.toDomain()
	return &created, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.Count(ctx, r.q, table)
}
