package toytype

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jacwu/toy-store/internal/domain"
)

type toyTypeRepo interface {
	FindAll(ctx context.Context) ([]domain.ToyType, error)
	FindByID(ctx context.Context, id int64) (*domain.ToyType, error)
	Create(ctx context.Context, tt domain.ToyType) (*domain.ToyType, error)
	Update(ctx context.Context, id int64, params domain.ToyTypeUpdateParams) (*domain.ToyType, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service provides toy type management operations.
type Service struct {
	toyTypes toyTypeRepo
	log      *slog.Logger
}

// NewService creates a new ToyType service.
func NewService(log *slog.Logger, toyTypes toyTypeRepo) *Service {
	return &Service{
		toyTypes: toyTypes,
		log:      log.With("service", "toytype"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
