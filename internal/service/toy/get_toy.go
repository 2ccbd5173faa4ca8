package toy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// GetToy returns domain.ErrToyNotFound when the id is unknown.
func (s *Service) GetToy(ctx context.Context, id int64) (*domain.ToyWithType, error) {
	t, err := s.toys.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrToyNotFound
		}
		return nil, fmt.Errorf("get toy: %w", err)
	}

	tt, err := s.lookupType(ctx, t.ToyTypeID)
	if err != nil {
		return nil, err
	}

	return &domain.ToyWithType{Toy: *t, Type: tt}, nil
}
