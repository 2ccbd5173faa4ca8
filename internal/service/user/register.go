package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jacwu/toy-store/internal/domain"
)

// Register creates an account. Usernames are stored and compared exactly as
// given. Returns domain.ErrUserExists if the username is already taken. The returned user carries no credential.
func (s *Service) Register(ctx context.Context, input CredentialsInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	created, err := s.users.Create(ctx, domain.User{
		Username:     input.Username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username),
	)

	u := created.Public()
	return &u, nil
}
