package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aixart12/infra-stucture-poc/internal/model"
)

// MockItemService is a testify mock of service.ItemService.
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}
