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

type uploadRepo struct {
	db *sqlx.DB
}

// NewUploadRepo creates a new PostgreSQL-backed UploadRepository.
func NewUploadRepo(db *sqlx.DB) port.UploadRepository {
	return &uploadRepo{db: db}
}

func (r *uploadRepo) Create(ctx context.Context, doc *domain.UploadedDocument) error {
	doc.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents
		 (id, user_id, conversation_id, name, content_type, file_size,
		  s3_bucket, s3_key, file_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		doc.ID, doc.UserID, doc.ConversationID, doc.Name, doc.ContentType,
		doc.FileSize, doc.S3Bucket, doc.S3Key, doc.FileURL, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("uploadRepo.Create: %w", err)
	}
	return nil
}

func (r *uploadRepo) GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.UploadedDocument, error) {
	var doc domain.UploadedDocument
	err := r.db.GetContext(ctx, &doc,
		`SELECT * FROM documents WHERE id = $1 AND user_id = $2`,
		docID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("uploadRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *uploadRepo) ListByConversation(ctx context.Context, userID, convID uuid.UUID) ([]domain.UploadedDocument, error) {
	var docs []domain.UploadedDocument
	err := r.db.SelectContext(ctx, &docs,
		`SELECT * FROM documents WHERE user_id = $1 AND conversation_id = $2
		 ORDER BY created_at DESC`, userID, convID)
	if err != nil {
		return nil, fmt.Errorf("uploadRepo.ListByConversation: %w", err)
	}
	return docs, nil
}
