package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
)

// MockUploadRepo is a mock implementation of port.UploadRepository.
type MockUploadRepo struct {
	mock.Mock
}

func (m *MockUploadRepo) Create(ctx context.Context, doc *domain.UploadedDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockUploadRepo) GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.UploadedDocument, error) {
	args := m.Called(ctx, userID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadedDocument), args.Error(1)
}

func (m *MockUploadRepo) ListByConversation(ctx context.Context, userID, convID uuid.UUID) ([]domain.UploadedDocument, error) {
	args := m.Called(ctx, userID, convID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadedDocument), args.Error(1)
}
