package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/port"
	"brokerdoc/internal/template"
)

// TemplateService exposes document template lookup and keyword resolution.
type TemplateService interface {
	List(ctx context.Context, typ domain.TemplateType, region string) ([]domain.DocumentTemplate, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.DocumentTemplate, error)
	Resolve(ctx context.Context, keyword, region string) (*domain.DocumentTemplate, error)
	Validate(ctx context.Context, templateID uuid.UUID, data map[string]any) (*template.ValidationResult, error)
}

type templateService struct {
	templateRepo port.TemplateRepository
}

// NewTemplateService creates a new TemplateService implementation.
func NewTemplateService(templateRepo port.TemplateRepository) TemplateService {
	return &templateService{templateRepo: templateRepo}
}

func (s *templateService) List(ctx context.Context, typ domain.TemplateType, region string) ([]domain.DocumentTemplate, error) {
	tmpls, err := s.templateRepo.List(ctx, typ, region)
	if err != nil {
		return nil, fmt.Errorf("template.List: %w", err)
	}
	return tmpls, nil
}

func (s *templateService) Get(ctx context.Context, id uuid.UUID) (*domain.DocumentTemplate, error) {
	return s.templateRepo.GetByID(ctx, id)
}

// Resolve maps a free-form template keyword to the active template for the
// region. Unknown keywords fall back to the purchase agreement; an empty
// region falls back to the default region.
func (s *templateService) Resolve(ctx context.Context, keyword, region string) (*domain.DocumentTemplate, error) {
	if region == "" {
		region = template.DefaultRegion
	}
	typ := template.ResolveType(keyword)
	tmpl, err := s.templateRepo.GetActiveByTypeRegion(ctx, typ, region)
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *templateService) Validate(ctx context.Context, templateID uuid.UUID, data map[string]any) (*template.ValidationResult, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	result := template.ValidateDocumentData(tmpl, data)
	return &result, nil
}
