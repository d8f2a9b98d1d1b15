package memory

import (
	"context"

	"github.com/aixart12/infra-stucture-poc/internal/model"
	"github.com/aixart12/infra-stucture-poc/internal/repository"
)

// itemMemory serves a fixed seed list from memory. The seed is never
// mutated after construction, so concurrent reads need no locking.
type itemMemory struct {
	items []model.Item
}

// NewItemMemory constructs the in-memory item repository with the demo seed data.
func NewItemMemory() repository.ItemRepository {
	return &itemMemory{
		items: []model.Item{
			{ID: 1, Name: "Item 1", Description: "First item"},
			{ID: 2, Name: "Item 2", Description: "Second item"},
			{ID: 3, Name: "Item 3", Description: "Third item"},
		},
	}
}

func (r *itemMemory) List(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}
