package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
)

// MockConversationRepo is a mock implementation of port.ConversationRepository.
type MockConversationRepo struct {
	mock.Mock
}

func (m *MockConversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockConversationRepo) GetByID(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error) {
	args := m.Called(ctx, userID, convID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockConversationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func (m *MockConversationRepo) UpdateTitle(ctx context.Context, userID, convID uuid.UUID, title string) error {
	args := m.Called(ctx, userID, convID, title)
	return args.Error(0)
}

func (m *MockConversationRepo) Touch(ctx context.Context, convID uuid.UUID) error {
	args := m.Called(ctx, convID)
	return args.Error(0)
}

func (m *MockConversationRepo) Delete(ctx context.Context, userID, convID uuid.UUID) error {
	args := m.Called(ctx, userID, convID)
	return args.Error(0)
}
