package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jacwu/toy-store/internal/domain"
)

// CreateComment stores a review for an existing toy. CreatedAt is set here.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireToy(ctx, input.ToyID); err != nil {
		return nil, err
	}

	c, err := s.comments.Create(ctx, domain.Comment{
		ToyID:     input.ToyID,
		Author:    strings.TrimSpace(input.Author),
		Content:   strings.TrimSpace(input.Content),
		Rating:    int(*input.Rating),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.Int64("comment_id", c.ID),
		slog.Int64("toy_id", c.ToyID),
		slog.Int("rating", c.Rating),
	)

	return c, nil
}
