package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jacwu/toy-store/internal/domain"
)

// CommentStore keeps comments in memory.
type CommentStore struct {
	t *table[domain.Comment]
}

// NewCommentStore creates an empty comment store.
func NewCommentStore() *CommentStore {
	return &CommentStore{t: newTable(
		func(c domain.Comment) int64 { return c.ID },
		func(c domain.Comment) domain.Comment { return c },
	)}
}

// FindAll returns every comment, newest first.
func (s *CommentStore) FindAll(_ context.Context) ([]domain.Comment, error) {
	return newestFirst(s.t.all()), nil
}

// FindByToyID returns the comments of one toy, newest first.
func (s *CommentStore) FindByToyID(_ context.Context, toyID int64) ([]domain.Comment, error) {
	return newestFirst(s.t.filter(func(c domain.Comment) bool { return c.ToyID == toyID })), nil
}

// FindByID returns domain.ErrNotFound when the comment does not exist.
func (s *CommentStore) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok := s.t.find(id)
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
	}
	return &c, nil
}

func (s *CommentStore) Create(_ context.Context, c domain.Comment) (*domain.Comment, error) {
	created, _ := s.t.insert(nil, func(id int64) domain.Comment {
		c.ID = id
		return c
	})
	return &created, nil
}

func (s *CommentStore) Update(_ context.Context, id int64, params domain.CommentUpdateParams) (*domain.Comment, error) {
	updated, ok := s.t.update(id, func(c *domain.Comment) {
		if params.Author != nil {
			c.Author = *params.Author
		}
		if params.Content != nil {
			c.Content = *params.Content
		}
		if params.Rating != nil {
			c.Rating = *params.Rating
		}
	})
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", id, domain.ErrNotFound)
	}
	return &updated, nil
}

// Delete reports whether a comment was removed.
func (s *CommentStore) Delete(_ context.Context, id int64) (bool, error) {
	return s.t.remove(id), nil
}

func (s *CommentStore) Count(_ context.Context) (int, error) {
	return s.t.count(), nil
}

// newestFirst sorts by CreatedAt descending, then id descending, matching
// the SQL backends.
func newestFirst(cs []domain.Comment) []domain.Comment {
	slices.SortFunc(cs, func(a, b domain.Comment) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return cs
}
