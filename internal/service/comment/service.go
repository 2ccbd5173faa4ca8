package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jacwu/toy-store/internal/domain"
)

type commentRepo interface {
	FindByToyID(ctx context.Context, toyID int64) ([]domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, id int64, params domain.CommentUpdateParams) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type toyRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Toy, error)
}

// Service provides toy review operations.
type Service struct {
	comments commentRepo
	toys     toyRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Comment service.
func NewService(log *slog.Logger, comments commentRepo, toys toyRepo) *Service {
	return &Service{
		comments: comments,
		toys:     toys,
		log:      log.With("service", "comment"),
		now:      time.Now,
	}
}

// requireToy returns domain.ErrToyNotFound unless the toy exists.
func (s *Service) requireToy(ctx context.Context, toyID int64) error {
	if _, err := s.toys.FindByID(ctx, toyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrToyNotFound
		}
		return fmt.Errorf("get toy: %w", err)
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
