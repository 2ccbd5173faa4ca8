package memory

import (
	"context"
	"fmt"

	"github.com/jacwu/toy-store/internal/domain"
)

// ToyTypeStore keeps toy types in memory.
type ToyTypeStore struct {
	t *table[domain.ToyType]
}

// NewToyTypeStore creates an empty toy type store.
func NewToyTypeStore() *ToyTypeStore {
	return &ToyTypeStore{t: newTable(
		func(tt domain.ToyType) int64 { return tt.ID },
		cloneToyType,
	)}
}

// FindAll returns every toy type in id order.
func (s *ToyTypeStore) FindAll(_ context.Context) ([]domain.ToyType, error) {
	return s.t.all(), nil
}

// FindByID returns domain.ErrNotFound when the toy type does not exist.
func (s *ToyTypeStore) FindByID(_ context.Context, id int64) (*domain.ToyType, error) {
	tt, ok := s.t.find(id)
	if !ok {
		return nil, fmt.Errorf("toy type %d: %w", id, domain.ErrNotFound)
	}
	return &tt, nil
}

func (s *ToyTypeStore) Create(_ context.Context, tt domain.ToyType) (*domain.ToyType, error) {
	created, _ := s.t.insert(nil, func(id int64) domain.ToyType {
		tt.ID = id
		return tt
	})
	return &created, nil
}

func (s *ToyTypeStore) Update(_ context.Context, id int64, params domain.ToyTypeUpdateParams) (*domain.ToyType, error) {
	updated, ok := s.t.update(id, func(tt *domain.ToyType) {
		if params.Name != nil {
			tt.Name = *params.Name
		}
		if params.Description != nil {
			tt.Description = *params.Description
		}
		if params.Icon != nil {
			icon := *params.Icon
			tt.Icon = &icon
		}
	})
	if !ok {
		return nil, fmt.Errorf("toy type %d: %w", id, domain.ErrNotFound)
	}
	return &updated, nil
}

// Delete reports whether a toy type was removed.
func (s *ToyTypeStore) Delete(_ context.Context, id int64) (bool, error) {
	return s.t.remove(id), nil
}

func (s *ToyTypeStore) Count(_ context.Context) (int, error) {
	return s.t.count(), nil
}

func cloneToyType(tt domain.ToyType) domain.ToyType {
	if tt.Icon != nil {
		icon := *tt.Icon
		tt.Icon = &icon
	}
	return tt
}
