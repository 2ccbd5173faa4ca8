package toytype

import (
	"context"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// ListToyTypes returns every toy type in id order.
func (s *Service) ListToyTypes(ctx context.Context) ([]domain.ToyType, error) {
	types, err := s.toyTypes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list toy types: %w", err)
	}
	return types, nil
}
