package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Generate(ctx context.Context, input service.GenerateInput) (*service.GenerateOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateOutput), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error) {
	args := m.Called(ctx, userID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedDocument), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, userID uuid.UUID) ([]domain.GeneratedDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedDocument), args.Error(1)
}

func (m *MockDocumentService) UpdateField(ctx context.Context, userID, docID uuid.UUID, field string, value any) (*service.GenerateOutput, error) {
	args := m.Called(ctx, userID, docID, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateOutput), args.Error(1)
}

func (m *MockDocumentService) Finalize(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error) {
	args := m.Called(ctx, userID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedDocument), args.Error(1)
}

func (m *MockDocumentService) ExportXLSX(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	args := m.Called(ctx, userID, w)
	return args.Error(0)
}
