package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jacwu/toy-store/internal/domain"
)

func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	removed, err := s.comments.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !removed {
		return domain.ErrCommentNotFound
	}

	s.log.InfoContext(ctx, "comment deleted", slog.Int64("comment_id", id))

	return nil
}
