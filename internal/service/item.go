package service

import (
	"context"
	"fmt"

	"github.com/aixart12/infra-stucture-poc/internal/model"
	"github.com/aixart12/infra-stucture-poc/internal/repository"
)

// ItemService defines the use cases for the sample item collection.
type ItemService interface {
	// List returns the fixed demo items in stable order.
	List(ctx context.Context) ([]model.Item, error)
}

// itemService is a concrete implementation of ItemService.
type itemService struct {
	repo repository.ItemRepository
}

// NewItemService constructs a new ItemService.
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}
