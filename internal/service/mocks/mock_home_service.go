package mocks

import (
	"context"

	"homesite/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockHomeService struct {
	mock.Mock
}

func (m *MockHomeService) Index(ctx context.Context) (*model.IndexPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IndexPage), args.Error(1)
}
