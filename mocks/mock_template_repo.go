package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
)

// MockTemplateRepo is a mock implementation of port.TemplateRepository.
type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) Create(ctx context.Context, tmpl *domain.DocumentTemplate) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}

func (m *MockTemplateRepo) GetActiveByTypeRegion(ctx context.Context, typ domain.TemplateType, region string) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, typ, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}

func (m *MockTemplateRepo) List(ctx context.Context, typ domain.TemplateType, region string) ([]domain.DocumentTemplate, error) {
	args := m.Called(ctx, typ, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentTemplate), args.Error(1)
}
