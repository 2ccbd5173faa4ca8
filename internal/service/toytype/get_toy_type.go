package toytype

import (
	"context"
	"errors"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// GetToyType returns domain.ErrToyTypeNotFound when the id is unknown.
func (s *Service) GetToyType(ctx context.Context, id int64) (*domain.ToyType, error) {
	tt, err := s.toyTypes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrToyTypeNotFound
		}
		return nil, fmt.Errorf("get toy type: %w", err)
	}
	return tt, nil
}
