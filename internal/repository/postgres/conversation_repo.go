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

type conversationRepo struct {
	db *sqlx.DB
}

// NewConversationRepo creates a new PostgreSQL-backed ConversationRepository.
func NewConversationRepo(db *sqlx.DB) port.ConversationRepository {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	now := time.Now().UTC()
	conv.CreatedAt = now
	conv.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		conv.ID, conv.UserID, conv.Title, conv.CreatedAt, conv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("conversationRepo.Create: %w", err)
	}
	return nil
}

func (r *conversationRepo) GetByID(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := r.db.GetContext(ctx, &conv,
		"SELECT * FROM conversations WHERE id = $1 AND user_id = $2", convID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("conversationRepo.GetByID: %w", err)
	}
	return &conv, nil
}

func (r *conversationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	var convs []domain.Conversation
	err := r.db.SelectContext(ctx, &convs,
		"SELECT * FROM conversations WHERE user_id = $1 ORDER BY updated_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("conversationRepo.ListByUser: %w", err)
	}
	return convs, nil
}

func (r *conversationRepo) UpdateTitle(ctx context.Context, userID, convID uuid.UUID, title string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE conversations SET title = $1, updated_at = $2 WHERE id = $3 AND user_id = $4",
		title, time.Now().UTC(), convID, userID)
	if err != nil {
		return fmt.Errorf("conversationRepo.UpdateTitle: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

// Touch bumps updated_at so the conversation sorts to the top of the list.
func (r *conversationRepo) Touch(ctx context.Context, convID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE conversations SET updated_at = $1 WHERE id = $2", time.Now().UTC(), convID)
	if err != nil {
		return fmt.Errorf("conversationRepo.Touch: %w", err)
	}
	return nil
}

func (r *conversationRepo) Delete(ctx context.Context, userID, convID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM conversations WHERE id = $1 AND user_id = $2", convID, userID)
	if err != nil {
		return fmt.Errorf("conversationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}
