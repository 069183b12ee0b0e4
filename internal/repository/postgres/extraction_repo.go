package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/port"
)

type extractionRepo struct {
	db *sqlx.DB
}

// NewExtractionRepo creates a new PostgreSQL-backed ExtractionRepository.
// The table is append-only; there is no update or delete path.
func NewExtractionRepo(db *sqlx.DB) port.ExtractionRepository {
	return &extractionRepo{db: db}
}

func (r *extractionRepo) Create(ctx context.Context, ex *domain.DocumentExtraction) error {
	ex.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO document_extractions
		 (id, conversation_id, template_id, user_input, extracted_fields,
		  confidence_scores, missing_required_fields, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ex.ID, ex.ConversationID, ex.TemplateID, ex.UserInput,
		[]byte(ex.ExtractedFields), nullableJSON(ex.ConfidenceScores),
		ex.MissingRequiredFields, ex.CreatedAt)
	if err != nil {
		return fmt.Errorf("extractionRepo.Create: %w", err)
	}
	return nil
}

func (r *extractionRepo) ListByConversation(ctx context.Context, convID uuid.UUID) ([]domain.DocumentExtraction, error) {
	var exs []domain.DocumentExtraction
	err := r.db.SelectContext(ctx, &exs,
		`SELECT * FROM document_extractions WHERE conversation_id = $1
		 ORDER BY created_at ASC`, convID)
	if err != nil {
		return nil, fmt.Errorf("extractionRepo.ListByConversation: %w", err)
	}
	return exs, nil
}

func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
