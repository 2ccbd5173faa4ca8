package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// GetComment returns domain.ErrCommentNotFound when the id is unknown.
func (s *Service) GetComment(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}
