package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jacwu/toy-store/internal/domain"
)

type toyTypeStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, tt domain.ToyType) (*domain.ToyType, error)
}

type toyStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, t domain.Toy) (*domain.Toy, error)
}

type commentStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
}

type userStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores groups the repositories the seeder writes to.
type Stores struct {
	ToyTypes toyTypeStore
	Toys     toyStore
	Comments commentStore
	Users    userStore
}

// Result counts the records created by Apply.
type Result struct {
	ToyTypes int
	Toys     int
	Comments int
	Users    int
}

// Seeder writes a Catalog into empty stores.
type Seeder struct {
	stores Stores
	tx     txManager
	hash   func(password string) (string, error)
	log    *slog.Logger
}

// New creates a Seeder. hash turns demo passwords into stored credentials.
func New(log *slog.Logger, stores Stores, tx txManager, hash func(string) (string, error)) *Seeder {
	return &Seeder{
		stores: stores,
		tx:     tx,
		hash:   hash,
		log:    log.With("component", "seed"),
	}
}

// Apply seeds each store that is empty. Toys are only seeded together with
// their toy types, and comments together with their toys, so catalogue
// references always resolve to the records created here.
func (s *Seeder) Apply(ctx context.Context, c *Catalog) (Result, error) {
	var res Result

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		res = Result{}

		typeIDs, err := s.seedToyTypes(ctx, c.ToyTypes)
		if err != nil {
			return err
		}
		res.ToyTypes = len(typeIDs)

		var toyIDs []int64
		if typeIDs != nil {
			if toyIDs, err = s.seedToys(ctx, c.Toys, typeIDs); err != nil {
				return err
			}
			res.Toys = len(toyIDs)
		}

		if toyIDs != nil {
			if res.Comments, err = s.seedComments(ctx, c.Comments, toyIDs); err != nil {
				return err
			}
		}

		res.Users, err = s.seedUsers(ctx, c.Users)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	s.log.InfoContext(ctx, "seed applied",
		slog.Int("toy_types", res.ToyTypes),
		slog.Int("toys", res.Toys),
		slog.Int("comments", res.Comments),
		slog.Int("users", res.Users),
	)

	return res, nil
}

func isEmpty(ctx context.Context, store interface {
	Count(ctx context.Context) (int, error)
}, name string) (bool, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count %s: %w", name, err)
	}
	return n == 0, nil
}

// seedToyTypes returns the created ids by catalogue position, or nil when
// the store already had data.
func (s *Seeder) seedToyTypes(ctx context.Context, entries []ToyTypeEntry) ([]int64, error) {
	empty, err := isEmpty(ctx, s.stores.ToyTypes, "toy types")
	if err != nil || !empty {
		return nil, err
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		tt, err := s.stores.ToyTypes.Create(ctx, domain.ToyType{
			Name:        e.Name,
			Description: e.Description,
			Icon:        e.Icon,
		})
		if err != nil {
			return nil, fmt.Errorf("seed: create toy type %q: %w", e.Name, err)
		}
		ids = append(ids, tt.ID)
	}
	return ids, nil
}

func (s *Seeder) seedToys(ctx context.Context, entries []ToyEntry, typeIDs []int64) ([]int64, error) {
	empty, err := isEmpty(ctx, s.stores.Toys, "toys")
	if err != nil || !empty {
		return nil, err
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		t, err := s.stores.Toys.Create(ctx, domain.Toy{
			Name:              e.Name,
			Description:       e.Description,
			DetailDescription: e.DetailDescription,
			Price:             e.Price,
			ToyTypeID:         typeIDs[e.ToyType-1],
		})
		if err != nil {
			return nil, fmt.Errorf("seed: create toy %q: %w", e.Name, err)
		}
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (s *Seeder) seedComments(ctx context.Context, entries []CommentEntry, toyIDs []int64) (int, error) {
	empty, err := isEmpty(ctx, s.stores.Comments, "comments")
	if err != nil || !empty {
		return 0, err
	}

	for _, e := range entries {
		_, err := s.stores.Comments.Create(ctx, domain.Comment{
			ToyID:     toyIDs[e.Toy-1],
			Author:    e.Author,
			Content:   e.Content,
			Rating:    e.Rating,
			CreatedAt: e.CreatedAt.UTC(),
		})
		if err != nil {
			return 0, fmt.Errorf("seed: create comment by %q: %w", e.Author, err)
		}
	}
	return len(entries), nil
}

func (s *Seeder) seedUsers(ctx context.Context, entries []UserEntry) (int, error) {
	empty, err := isEmpty(ctx, s.stores.Users, "users")
	if err != nil || !empty {
		return 0, err
	}

	for _, e := range entries {
		hash, err := s.hash(e.Password)
		if err != nil {
			return 0, fmt.Errorf("seed: user %q: %w", e.Username, err)
		}
		if _, err := s.stores.Users.Create(ctx, domain.User{Username: e.Username, PasswordHash: hash}); err != nil {
			return 0, fmt.Errorf("seed: create user %q: %w", e.Username, err)
		}
	}
	return len(entries), nil
}
