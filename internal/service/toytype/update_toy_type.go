package toytype

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jacwu/toy-store/internal/domain"
)

// UpdateToyType applies a partial update. Omitted fields keep their values.
func (s *Service) UpdateToyType(ctx context.Context, input UpdateToyTypeInput) (*domain.ToyType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tt, err := s.toyTypes.Update(ctx, input.ID, domain.ToyTypeUpdateParams{
		Name:        trimPtr(input.Name),
		Description: trimPtr(input.Description),
		Icon:        trimPtr(input.Icon),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrToyTypeNotFound
		}
		return nil, fmt.Errorf("update toy type: %w", err)
	}

	s.log.InfoContext(ctx, "toy type updated", slog.Int64("toy_type_id", tt.ID))

	return tt, nil
}
