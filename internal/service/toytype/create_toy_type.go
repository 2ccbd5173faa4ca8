package toytype

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jacwu/toy-store/internal/domain"
)

// CreateToyType validates the input and stores a new toy type.
func (s *Service) CreateToyType(ctx context.Context, input CreateToyTypeInput) (*domain.ToyType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tt, err := s.toyTypes.Create(ctx, domain.ToyType{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Icon:        trimOrNil(input.Icon),
	})
	if err != nil {
		return nil, fmt.Errorf("create toy type: %w", err)
	}

	s.log.InfoContext(ctx, "toy type created",
		slog.Int64("toy_type_id", tt.ID),
		slog.String("name", tt.Name),
	)

	return tt, nil
}
