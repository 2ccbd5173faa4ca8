package toy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jacwu/toy-store/internal/domain"
)

type toyRepo interface {
	FindAll(ctx context.Context) ([]domain.Toy, error)
	FindByToyTypeID(ctx context.Context, toyTypeID int64) ([]domain.Toy, error)
	FindByID(ctx context.Context, id int64) (*domain.Toy, error)
	Create(ctx context.Context, toy domain.Toy) (*domain.Toy, error)
	Update(ctx context.Context, id int64, params domain.ToyUpdateParams) (*domain.Toy, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type toyTypeRepo interface {
	FindAll(ctx context.Context) ([]domain.ToyType, error)
	FindByID(ctx context.Context, id int64) (*domain.ToyType, error)
}

// Service provides toy catalogue operations.
type Service struct {
	toys     toyRepo
	toyTypes toyTypeRepo
	log      *slog.Logger
}

// NewService creates a new Toy service.
func NewService(log *slog.Logger, toys toyRepo, toyTypes toyTypeRepo) *Service {
	return &Service{
		toys:     toys,
		toyTypes: toyTypes,
		log:      log.With("service", "toy"),
	}
}

// lookupType returns the toy type or nil when it no longer exists.
func (s *Service) lookupType(ctx context.Context, id int64) (*domain.ToyType, error) {
	tt, err := s.toyTypes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get toy type: %w", err)
	}
	return tt, nil
}

// withTypes annotates each toy with its type using a single type listing.
func (s *Service) withTypes(ctx context.Context, toys []domain.Toy) ([]domain.ToyWithType, error) {
	types, err := s.toyTypes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list toy types: %w", err)
	}

	byID := make(map[int64]domain.ToyType, len(types))
	for _, tt := range types {
		byID[tt.ID] = tt
	}

	out := make([]domain.ToyWithType, len(toys))
	for i, t := range toys {
		out[i] = domain.ToyWithType{Toy: t}
		if tt, ok := byID[t.ToyTypeID]; ok {
			out[i].Type = &tt
		}
	}
	return out, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
