package repository

import (
	"context"

	"github.com/aixart12/infra-stucture-poc/internal/model"
)

// ItemRepository abstracts access to the sample item collection.
// The demo ships a read-only in-memory implementation; the interface keeps
// handlers and services decoupled from where the data lives.
type ItemRepository interface {
	// List returns every item. The result is a fresh slice on each call so
	// callers cannot mutate the backing collection.
	List(ctx context.Context) ([]model.Item, error)
}
