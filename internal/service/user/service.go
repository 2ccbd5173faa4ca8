package user

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/jacwu/toy-store/internal/domain"
)

type userRepo interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

// Service provides storefront account operations.
type Service struct {
	users    userRepo
	hashCost int
	log      *slog.Logger
}

// NewService creates a new User service. hashCost is the bcrypt cost used
// for new passwords.
func NewService(log *slog.Logger, users userRepo, hashCost int) *Service {
	return &Service{
		users:    users,
		hashCost: hashCost,
		log:      log.With("service", "user"),
	}
}

// HashPassword returns the bcrypt hash stored for a password of any length.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// prehash folds a password into 44 bytes so bcrypt's 72-byte input limit
// never truncates or rejects it.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
