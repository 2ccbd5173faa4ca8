package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jacwu/toy-store/internal/domain"
)

var userColumns = []string{"id", "username", "password_hash"}

type userRow struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{ID: r.ID, Username: r.Username, PasswordHash: r.PasswordHash}
}

// UserRepo persists accounts in the users table.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	query, args, err := builder.Select(userColumns...).From("users").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("list users: build query: %w", err)
	}

	var rows []userRow
	if err := sqlscan.Select(ctx, querierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.User, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := builder.Select(userColumns...).From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get user: build query: %w", err)
	}

	var rw userRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "user", username)
	}

	u := rw.toDomain()
	return &u, nil
}

// Create returns domain.ErrAlreadyExists when the username is taken.
func (r *UserRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query, args, err := builder.Insert("users").
		Columns("username", "password_hash").
		Values(u.Username, u.PasswordHash).
		Suffix("RETURNING id, username, password_hash").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create user: build query: %w", err)
	}

	var rw userRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapError(err, "user", u.Username)
	}

	created := rw.toDomain()
	return &created, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "users")
}
