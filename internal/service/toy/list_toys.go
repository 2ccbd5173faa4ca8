package toy

import (
	"context"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// ListToys returns every toy in id order, each annotated with its type.
func (s *Service) ListToys(ctx context.Context) ([]domain.ToyWithType, error) {
	toys, err := s.toys.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list toys: %w", err)
	}
	return s.withTypes(ctx, toys)
}

// ListToysByType returns the toys of one type. A toyTypeID of 0 lists every
// toy. An unknown type yields an empty list rather than an error.
func (s *Service) ListToysByType(ctx context.Context, toyTypeID int64) ([]domain.ToyWithType, error) {
	if toyTypeID < 0 {
		return nil, domain.NewValidationError("toyTypeId", "must be greater than or equal to 0")
	}
	if toyTypeID == 0 {
		return s.ListToys(ctx)
	}

	toys, err := s.toys.FindByToyTypeID(ctx, toyTypeID)
	if err != nil {
		return nil, fmt.Errorf("list toys by type: %w", err)
	}
	return s.withTypes(ctx, toys)
}
