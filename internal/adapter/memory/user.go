package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jacwu/toy-store/internal/domain"
)

// UserStore keeps user accounts in memory.
type UserStore struct {
	t *table[domain.User]
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{t: newTable(
		func(u domain.User) int64 { return u.ID },
		func(u domain.User) domain.User { return u },
	)}
}

func (s *UserStore) FindAll(_ context.Context) ([]domain.User, error) {
	return s.t.all(), nil
}

// FindByUsername returns domain.ErrNotFound when no user has the name.
func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.t.findFirst(func(u domain.User) bool { return u.Username == username })
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	return &u, nil
}

// Create returns domain.ErrAlreadyExists when the username is taken.
// The uniqueness check and the insert happen under one lock.
func (s *UserStore) Create(_ context.Context, u domain.User) (*domain.User, error) {
	created, err := s.t.insert(
		func(rows []domain.User) error {
			taken := slices.ContainsFunc(rows, func(r domain.User) bool { return r.Username == u.Username })
			if taken {
				return fmt.Errorf("user %q: %w", u.Username, domain.ErrAlreadyExists)
			}
			return nil
		},
		func(id int64) domain.User {
			u.ID = id
			return u
		},
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *UserStore) Count(_ context.Context) (int, error) {
	return s.t.count(), nil
}
