package toy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jacwu/toy-store/internal/domain"
)

// CreateToy validates the input, checks that the toy type exists and stores
// the toy.
func (s *Service) CreateToy(ctx context.Context, input CreateToyInput) (*domain.ToyWithType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	toyTypeID := int64(*input.ToyTypeID)
	tt, err := s.lookupType(ctx, toyTypeID)
	if err != nil {
		return nil, err
	}
	if tt == nil {
		return nil, domain.ErrToyTypeMissing
	}

	created, err := s.toys.Create(ctx, domain.Toy{
		Name:              strings.TrimSpace(input.Name),
		Description:       strings.TrimSpace(input.Description),
		DetailDescription: strings.TrimSpace(input.DetailDescription),
		Price:             *input.Price,
		ToyTypeID:         toyTypeID,
	})
	if err != nil {
		return nil, fmt.Errorf("create toy: %w", err)
	}

	s.log.InfoContext(ctx, "toy created",
		slog.Int64("toy_id", created.ID),
		slog.Int64("toy_type_id", toyTypeID),
		slog.String("name", created.Name),
	)

	return &domain.ToyWithType{Toy: *created, Type: tt}, nil
}
