package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/service"
	"brokerdoc/mocks"
)

func TestTemplateService_Resolve_DefaultsRegion(t *testing.T) {
	templateRepo := new(mocks.MockTemplateRepo)
	svc := service.NewTemplateService(templateRepo)
	tmpl := ontarioTemplate()

	templateRepo.On("GetActiveByTypeRegion", mock.Anything, domain.TemplatePurchaseAgreement, "ontario").
		Return(tmpl, nil)

	got, err := svc.Resolve(context.Background(), "standard purchase agreement", "")

	require.NoError(t, err)
	assert.Equal(t, tmpl.ID, got.ID)
}

func TestTemplateService_Resolve_KeywordMapping(t *testing.T) {
	templateRepo := new(mocks.MockTemplateRepo)
	svc := service.NewTemplateService(templateRepo)

	templateRepo.On("GetActiveByTypeRegion", mock.Anything, domain.TemplateLeaseAgreement, "ontario").
		Return(nil, domain.ErrTemplateNotFound)

	_, err := svc.Resolve(context.Background(), "residential lease", "ontario")

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	templateRepo.AssertExpectations(t)
}

func TestTemplateService_Validate(t *testing.T) {
	templateRepo := new(mocks.MockTemplateRepo)
	svc := service.NewTemplateService(templateRepo)
	tmpl := ontarioTemplate()

	templateRepo.On("GetByID", mock.Anything, tmpl.ID).Return(tmpl, nil)

	result, err := svc.Validate(context.Background(), tmpl.ID, map[string]any{
		"property_address": "123 Main Street, Toronto, ON M5V 3A8",
	})

	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.MissingRequired, "purchase_price")
	assert.NotContains(t, result.MissingRequired, "property_address")
}

func TestTemplateService_Validate_TemplateNotFound(t *testing.T) {
	templateRepo := new(mocks.MockTemplateRepo)
	svc := service.NewTemplateService(templateRepo)
	id := uuid.New()

	templateRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrTemplateNotFound)

	_, err := svc.Validate(context.Background(), id, nil)

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}
