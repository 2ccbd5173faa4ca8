//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jacwu/toy-store/internal/adapter/postgres"
	"github.com/jacwu/toy-store/internal/adapter/postgres/comment"
	"github.com/jacwu/toy-store/internal/adapter/postgres/testhelper"
	"github.com/jacwu/toy-store/internal/adapter/postgres/toy"
	"github.com/jacwu/toy-store/internal/adapter/postgres/toytype"
	"github.com/jacwu/toy-store/internal/adapter/postgres/user"
	"github.com/jacwu/toy-store/internal/domain"
	"github.com/jacwu/toy-store/internal/seed"
)

func TestRepos_SeedAndQuery(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool)
	ctx := context.Background()

	types, toys, comments, users := toytype.New(pool), toy.New(pool), comment.New(pool), user.New(pool)

	catalog, err := seed.Default()
	if err != nil {
		t.Fatalf("seed.Default: %v", err)
	}

	s := seed.New(slog.New(slog.DiscardHandler), seed.Stores{
		ToyTypes: types, Toys: toys, Comments: comments, Users: users,
	}, postgres.NewTxManager(pool), func(p string) (string, error) { return "hash:" + p, nil })

	res, err := s.Apply(ctx, catalog)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Toys != 32 {
		t.Fatalf("seeded %d toys, want 32", res.Toys)
	}

	byType, err := toys.FindByToyTypeID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByToyTypeID: %v", err)
	}
	for _, tt := range byType {
		if tt.ToyTypeID != 1 {
			t.Errorf("toy %d has type %d, want 1", tt.ID, tt.ToyTypeID)
		}
	}

	all, err := comments.FindAll(ctx)
	if err != nil {
		t.Fatalf("comments.FindAll: %v", err)
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Errorf("comments not newest first at %d", i)
		}
	}

	if _, err := users.Create(ctx, domain.User{Username: "jacwu", PasswordHash: "other"}); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("duplicate user error = %v, want ErrAlreadyExists", err)
	}
}

func TestRepos_IDsNotReused(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool)
	ctx := context.Background()

	types := toytype.New(pool)

	first, err := types.Create(ctx, domain.ToyType{Name: "Blocks", Description: "Building blocks for kids"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	removed, err := types.Delete(ctx, first.ID)
	if err != nil || !removed {
		t.Fatalf("Delete = %v, %v", removed, err)
	}
	removed, err = types.Delete(ctx, first.ID)
	if err != nil || removed {
		t.Fatalf("second Delete = %v, %v, want false", removed, err)
	}

	second, err := types.Create(ctx, domain.ToyType{Name: "Dolls", Description: "Dolls and figures"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("id %d reused after %d", second.ID, first.ID)
	}

	if _, err := types.FindByID(ctx, first.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID deleted = %v, want ErrNotFound", err)
	}
}
