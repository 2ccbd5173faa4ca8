package toy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jacwu/toy-store/internal/domain"
)

// UpdateToy applies a partial update. A changed toy type is checked before
// anything is written.
func (s *Service) UpdateToy(ctx context.Context, input UpdateToyInput) (*domain.ToyWithType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ToyUpdateParams{
		Name:              trimPtr(input.Name),
		Description:       trimPtr(input.Description),
		DetailDescription: trimPtr(input.DetailDescription),
		Price:             input.Price,
	}

	if input.ToyTypeID != nil {
		toyTypeID := int64(*input.ToyTypeID)
		tt, err := s.lookupType(ctx, toyTypeID)
		if err != nil {
			return nil, err
		}
		if tt == nil {
			return nil, domain.ErrToyTypeMissing
		}
		params.ToyTypeID = &toyTypeID
	}

	updated, err := s.toys.Update(ctx, input.ID, params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrToyNotFound
		}
		return nil, fmt.Errorf("update toy: %w", err)
	}

	tt, err := s.lookupType(ctx, updated.ToyTypeID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "toy updated", slog.Int64("toy_id", updated.ID))

	return &domain.ToyWithType{Toy: *updated, Type: tt}, nil
}
