package comment

import (
	"context"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// ListCommentsByToy returns the reviews of a toy, newest first.
func (s *Service) ListCommentsByToy(ctx context.Context, toyID int64) ([]domain.Comment, error) {
	if err := s.requireToy(ctx, toyID); err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByToyID(ctx, toyID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
