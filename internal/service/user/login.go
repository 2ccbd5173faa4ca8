package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/jacwu/toy-store/internal/domain"
)

// Login checks a username and password. An unknown user and a wrong password
// both return domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input CredentialsInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	found, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), prehash(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", found.ID))

	u := found.Public()
	return &u, nil
}
