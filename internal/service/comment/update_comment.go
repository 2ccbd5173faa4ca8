package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jacwu/toy-store/internal/domain"
)

// UpdateComment applies a partial update. Omitted fields keep their values.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CommentUpdateParams{
		Author:  trimPtr(input.Author),
		Content: trimPtr(input.Content),
	}
	if input.Rating != nil {
		r := int(*input.Rating)
		params.Rating = &r
	}

	c, err := s.comments.Update(ctx, input.ID, params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment updated", slog.Int64("comment_id", c.ID))

	return c, nil
}
