package toytype

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jacwu/toy-store/internal/domain"
)

// DeleteToyType removes a toy type. Toys that reference it are left as they are.
func (s *Service) DeleteToyType(ctx context.Context, id int64) error {
	removed, err := s.toyTypes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete toy type: %w", err)
	}
	if !removed {
		return domain.ErrToyTypeNotFound
	}

	s.log.InfoContext(ctx, "toy type deleted", slog.Int64("toy_type_id", id))

	return nil
}
