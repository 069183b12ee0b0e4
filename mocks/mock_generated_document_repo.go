package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
)

// MockGeneratedDocumentRepo is a mock implementation of port.GeneratedDocumentRepository.
type MockGeneratedDocumentRepo struct {
	mock.Mock
}

func (m *MockGeneratedDocumentRepo) Create(ctx context.Context, doc *domain.GeneratedDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockGeneratedDocumentRepo) GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error) {
	args := m.Called(ctx, userID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedDocument), args.Error(1)
}

func (m *MockGeneratedDocumentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GeneratedDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedDocument), args.Error(1)
}

func (m *MockGeneratedDocumentRepo) Update(ctx context.Context, doc *domain.GeneratedDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockGeneratedDocumentRepo) UpdateStatus(ctx context.Context, userID, docID uuid.UUID, status domain.DocumentStatus) error {
	args := m.Called(ctx, userID, docID, status)
	return args.Error(0)
}
