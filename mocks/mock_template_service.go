package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/template"
)

// MockTemplateService is a mock implementation of service.TemplateService.
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context, typ domain.TemplateType, region string) ([]domain.DocumentTemplate, error) {
	args := m.Called(ctx, typ, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentTemplate), args.Error(1)
}

func (m *MockTemplateService) Get(ctx context.Context, id uuid.UUID) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}

func (m *MockTemplateService) Resolve(ctx context.Context, keyword, region string) (*domain.DocumentTemplate, error) {
	args := m.Called(ctx, keyword, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentTemplate), args.Error(1)
}

func (m *MockTemplateService) Validate(ctx context.Context, templateID uuid.UUID, data map[string]any) (*template.ValidationResult, error) {
	args := m.Called(ctx, templateID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*template.ValidationResult), args.Error(1)
}
