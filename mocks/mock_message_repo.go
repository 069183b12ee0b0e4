package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
)

// MockMessageRepo is a mock implementation of port.MessageRepository.
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepo) ListByConversation(ctx context.Context, convID uuid.UUID, limit int) ([]domain.Message, error) {
	args := m.Called(ctx, convID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageRepo) CountByConversation(ctx context.Context, convID uuid.UUID) (int, error) {
	args := m.Called(ctx, convID)
	return args.Int(0), args.Error(1)
}
