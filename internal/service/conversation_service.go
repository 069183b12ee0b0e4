package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/port"
)

// ConversationService manages chat threads and their message history.
type ConversationService interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Conversation, error)
	Get(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
	Rename(ctx context.Context, userID, convID uuid.UUID, title string) error
	Delete(ctx context.Context, userID, convID uuid.UUID) error
	Messages(ctx context.Context, userID, convID uuid.UUID, limit int) ([]domain.Message, error)
}

type conversationService struct {
	convRepo port.ConversationRepository
	msgRepo  port.MessageRepository
}

// NewConversationService creates a new ConversationService implementation.
func NewConversationService(convRepo port.ConversationRepository, msgRepo port.MessageRepository) ConversationService {
	return &conversationService{
		convRepo: convRepo,
		msgRepo:  msgRepo,
	}
}

func (s *conversationService) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Conversation, error) {
	if title == "" {
		title = "New Conversation"
	}
	conv := &domain.Conversation{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
	}
	if err := s.convRepo.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("conversation.Create: %w", err)
	}
	return conv, nil
}

func (s *conversationService) Get(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error) {
	return s.convRepo.GetByID(ctx, userID, convID)
}

func (s *conversationService) List(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	convs, err := s.convRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("conversation.List: %w", err)
	}
	return convs, nil
}

func (s *conversationService) Rename(ctx context.Context, userID, convID uuid.UUID, title string) error {
	return s.convRepo.UpdateTitle(ctx, userID, convID, title)
}

func (s *conversationService) Delete(ctx context.Context, userID, convID uuid.UUID) error {
	return s.convRepo.Delete(ctx, userID, convID)
}

func (s *conversationService) Messages(ctx context.Context, userID, convID uuid.UUID, limit int) ([]domain.Message, error) {
	// Ownership check before exposing history.
	if _, err := s.convRepo.GetByID(ctx, userID, convID); err != nil {
		return nil, err
	}
	msgs, err := s.msgRepo.ListByConversation(ctx, convID, limit)
	if err != nil {
		return nil, fmt.Errorf("conversation.Messages: %w", err)
	}
	return msgs, nil
}
