// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cardsDomain "github.com/allisson/cards/internal/cards/domain"
)

// MockCardUseCase is a mock implementation of CardUseCase for testing.
type MockCardUseCase struct {
	mock.Mock
}

// Validate mocks the Validate method of CardUseCase.
func (m *MockCardUseCase) Validate(ctx context.Context, number string) (*cardsDomain.Card, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardsDomain.Card), args.Error(1)
}

// Generate mocks the Generate method of CardUseCase.
func (m *MockCardUseCase) Generate(ctx context.Context, prefix string) (*cardsDomain.Card, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardsDomain.Card), args.Error(1)
}
