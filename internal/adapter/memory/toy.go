package memory

import (
	"context"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// ToyStore keeps toys in memory.
type ToyStore struct {
	t *table[domain.Toy]
}

// NewToyStore creates an empty toy store.
func NewToyStore() *ToyStore {
	return &ToyStore{t: newTable(
		func(t domain.Toy) int64 { return t.ID },
		func(t domain.Toy) domain.Toy { return t },
	)}
}

// FindAll returns every toy in id order.
func (s *ToyStore) FindAll(_ context.Context) ([]domain.Toy, error) {
	return s.t.all(), nil
}

// FindByToyTypeID returns the toys of one type in id order.
func (s *ToyStore) FindByToyTypeID(_ context.Context, toyTypeID int64) ([]domain.Toy, error) {
	return s.t.filter(func(t domain.Toy) bool { return t.ToyTypeID == toyTypeID }), nil
}

// FindByID returns domain.ErrNotFound when the toy does not exist.
func (s *ToyStore) FindByID(_ context.Context, id int64) (*domain.Toy, error) {
	toy, ok := s.t.find(id)
	if !ok {
		return nil, fmt.Errorf("toy %d: %w", id, domain.ErrNotFound)
	}
	return &toy, nil
}

func (s *ToyStore) Create(_ context.Context, toy domain.Toy) (*domain.Toy, error) {
	created, _ := s.t.insert(nil, func(id int64) domain.Toy {
		toy.ID = id
		return toy
	})
	return &created, nil
}

func (s *ToyStore) Update(_ context.Context, id int64, params domain.ToyUpdateParams) (*domain.Toy, error) {
	updated, ok := s.t.update(id, func(t *domain.Toy) {
		if params.Name != nil {
			t.Name = *params.Name
		}
		if params.Description != nil {
			t.Description = *params.Description
		}
		if params.DetailDescription != nil {
			t.DetailDescription = *params.DetailDescription
		}
		if params.Price != nil {
			t.Price = *params.Price
		}
		if params.ToyTypeID != nil {
			t.ToyTypeID = *params.ToyTypeID
		}
	})
	if !ok {
		return nil, fmt.Errorf("toy %d: %w", id, domain.ErrNotFound)
	}
	return &updated, nil
}

// Delete reports whether a toy was removed.
func (s *ToyStore) Delete(_ context.Context, id int64) (bool, error) {
	return s.t.remove(id), nil
}

func (s *ToyStore) Count(_ context.Context) (int, error) {
	return s.t.count(), nil
}
