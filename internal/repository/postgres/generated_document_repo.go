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

type generatedDocumentRepo struct {
	db *sqlx.DB
}

// NewGeneratedDocumentRepo creates a new PostgreSQL-backed GeneratedDocumentRepository.
func NewGeneratedDocumentRepo(db *sqlx.DB) port.GeneratedDocumentRepository {
	return &generatedDocumentRepo{db: db}
}

func (r *generatedDocumentRepo) Create(ctx context.Context, doc *domain.GeneratedDocument) error {
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generated_documents
		 (id, user_id, conversation_id, template_id, document_data, pdf_url,
		  s3_bucket, s3_key, status, version, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		doc.ID, doc.UserID, doc.ConversationID, doc.TemplateID, doc.DocumentData,
		doc.PDFURL, doc.S3Bucket, doc.S3Key, doc.Status, doc.Version, doc.Metadata,
		doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("generatedDocumentRepo.Create: %w", err)
	}
	return nil
}

func (r *generatedDocumentRepo) GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error) {
	var doc domain.GeneratedDocument
	err := r.db.GetContext(ctx, &doc,
		`SELECT * FROM generated_documents WHERE id = $1 AND user_id = $2`,
		docID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("generatedDocumentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *generatedDocumentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GeneratedDocument, error) {
	var docs []domain.GeneratedDocument
	err := r.db.SelectContext(ctx, &docs,
		`SELECT * FROM generated_documents WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("generatedDocumentRepo.ListByUser: %w", err)
	}
	return docs, nil
}

func (r *generatedDocumentRepo) Update(ctx context.Context, doc *domain.GeneratedDocument) error {
	doc.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`UPDATE generated_documents
		 SET document_data = $1, pdf_url = $2, s3_bucket = $3, s3_key = $4,
		     status = $5, version = $6, metadata = $7, updated_at = $8
		 WHERE id = $9 AND user_id = $10`,
		doc.DocumentData, doc.PDFURL, doc.S3Bucket, doc.S3Key,
		doc.Status, doc.Version, doc.Metadata, doc.UpdatedAt,
		doc.ID, doc.UserID)
	if err != nil {
		return fmt.Errorf("generatedDocumentRepo.Update: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("generatedDocumentRepo.Update: rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *generatedDocumentRepo) UpdateStatus(ctx context.Context, userID, docID uuid.UUID, status domain.DocumentStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE generated_documents SET status = $1, updated_at = $2
		 WHERE id = $3 AND user_id = $4`,
		status, time.Now().UTC(), docID, userID)
	if err != nil {
		return fmt.Errorf("generatedDocumentRepo.UpdateStatus: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("generatedDocumentRepo.UpdateStatus: rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
