package user

import (
	"context"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// ListUsers returns every account without credentials.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}
