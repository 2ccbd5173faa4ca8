package toy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jacwu/toy-store/internal/domain"
)

// DeleteToy removes a toy. Its comments are kept.
func (s *Service) DeleteToy(ctx context.Context, id int64) error {
	removed, err := s.toys.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete toy: %w", err)
	}
	if !removed {
		return domain.ErrToyNotFound
	}

	s.log.InfoContext(ctx, "toy deleted", slog.Int64("toy_id", id))

	return nil
}
