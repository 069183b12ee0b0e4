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

type messageRepo struct {
	db *sqlx.DB
}

// NewMessageRepo creates a new PostgreSQL-backed MessageRepository.
func NewMessageRepo(db *sqlx.DB) port.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	msg.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages
		 (id, conversation_id, role, content, file_url, file_name, file_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		msg.ID, msg.ConversationID, msg.Role, msg.Content,
		msg.FileURL, msg.FileName, msg.FileType, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("messageRepo.Create: %w", err)
	}
	return nil
}

func (r *messageRepo) ListByConversation(ctx context.Context, convID uuid.UUID, limit int) ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.db.SelectContext(ctx, &msgs,
		`SELECT * FROM messages WHERE conversation_id = $1
		 ORDER BY created_at ASC LIMIT $2`,
		convID, limit)
	if err != nil {
		return nil, fmt.Errorf("messageRepo.ListByConversation: %w", err)
	}
	return msgs, nil
}

func (r *messageRepo) CountByConversation(ctx context.Context, convID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM messages WHERE conversation_id = $1", convID)
	if err != nil {
		return 0, fmt.Errorf("messageRepo.CountByConversation: %w", err)
	}
	return count, nil
}
