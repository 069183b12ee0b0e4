package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
)

// MockExtractionRepo is a mock implementation of port.ExtractionRepository.
type MockExtractionRepo struct {
	mock.Mock
}

func (m *MockExtractionRepo) Create(ctx context.Context, ex *domain.DocumentExtraction) error {
	args := m.Called(ctx, ex)
	return args.Error(0)
}

func (m *MockExtractionRepo) ListByConversation(ctx context.Context, convID uuid.UUID) ([]domain.DocumentExtraction, error) {
	args := m.Called(ctx, convID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentExtraction), args.Error(1)
}
