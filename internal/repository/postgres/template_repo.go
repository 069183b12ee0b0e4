package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/port"
)

type templateRepo struct {
	db *sqlx.DB
}

// NewTemplateRepo creates a new PostgreSQL-backed TemplateRepository.
func NewTemplateRepo(db *sqlx.DB) port.TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, tmpl *domain.DocumentTemplate) error {
	now := time.Now().UTC()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO document_templates
		 (id, name, type, region, version, description, pdf_form_url,
		  required_fields, optional_fields, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		tmpl.ID, tmpl.Name, tmpl.Type, tmpl.Region, tmpl.Version, tmpl.Description,
		tmpl.PDFFormURL, tmpl.RequiredFields, tmpl.OptionalFields, tmpl.IsActive,
		tmpl.CreatedAt, tmpl.UpdatedAt)
	if err != nil {
		return fmt.Errorf("templateRepo.Create: %w", err)
	}
	return nil
}

func (r *templateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentTemplate, error) {
	var tmpl domain.DocumentTemplate
	err := r.db.GetContext(ctx, &tmpl,
		"SELECT * FROM document_templates WHERE id = $1 AND is_active = true", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("templateRepo.GetByID: %w", err)
	}
	return &tmpl, nil
}

func (r *templateRepo) GetActiveByTypeRegion(ctx context.Context, typ domain.TemplateType, region string) (*domain.DocumentTemplate, error) {
	var tmpl domain.DocumentTemplate
	err := r.db.GetContext(ctx, &tmpl,
		`SELECT * FROM document_templates
		 WHERE type = $1 AND region = $2 AND is_active = true
		 ORDER BY version DESC LIMIT 1`,
		typ, region)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("templateRepo.GetActiveByTypeRegion: %w", err)
	}
	return &tmpl, nil
}

func (r *templateRepo) List(ctx context.Context, typ domain.TemplateType, region string) ([]domain.DocumentTemplate, error) {
	query := "SELECT * FROM document_templates WHERE is_active = true"
	args := []any{}
	if typ != "" {
		args = append(args, typ)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if region != "" {
		args = append(args, region)
		query += fmt.Sprintf(" AND region = $%d", len(args))
	}
	query += " ORDER BY name ASC"

	var tmpls []domain.DocumentTemplate
	if err := r.db.SelectContext(ctx, &tmpls, query, args...); err != nil {
		return nil, fmt.Errorf("templateRepo.List: %w", err)
	}
	return tmpls, nil
}
