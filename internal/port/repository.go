package port

import (
	"context"

	"github.com/google/uuid"

	"brokerdoc/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// ConversationRepository defines the contract for conversation persistence.
// Query methods include userID to enforce ownership at the data layer.
type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) error
	GetByID(ctx context.Context, userID, convID uuid.UUID) (*domain.Conversation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
	UpdateTitle(ctx context.Context, userID, convID uuid.UUID, title string) error
	Touch(ctx context.Context, convID uuid.UUID) error
	Delete(ctx context.Context, userID, convID uuid.UUID) error
}

// MessageRepository defines the contract for chat message persistence.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByConversation(ctx context.Context, convID uuid.UUID, limit int) ([]domain.Message, error)
	CountByConversation(ctx context.Context, convID uuid.UUID) (int, error)
}

// TemplateRepository defines the contract for document template lookup.
// Templates are immutable once published; there is no update path.
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.DocumentTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DocumentTemplate, error)
	GetActiveByTypeRegion(ctx context.Context, typ domain.TemplateType, region string) (*domain.DocumentTemplate, error)
	List(ctx context.Context, typ domain.TemplateType, region string) ([]domain.DocumentTemplate, error)
}

// ExtractionRepository persists the append-only extraction audit trail.
type ExtractionRepository interface {
	Create(ctx context.Context, ex *domain.DocumentExtraction) error
	ListByConversation(ctx context.Context, convID uuid.UUID) ([]domain.DocumentExtraction, error)
}

// GeneratedDocumentRepository defines the contract for generated document persistence.
type GeneratedDocumentRepository interface {
	Create(ctx context.Context, doc *domain.GeneratedDocument) error
	GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.GeneratedDocument, error)
	Update(ctx context.Context, doc *domain.GeneratedDocument) error
	UpdateStatus(ctx context.Context, userID, docID uuid.UUID, status domain.DocumentStatus) error
}

// UploadRepository defines the contract for uploaded document metadata.
type UploadRepository interface {
	Create(ctx context.Context, doc *domain.UploadedDocument) error
	GetByID(ctx context.Context, userID, docID uuid.UUID) (*domain.UploadedDocument, error)
	ListByConversation(ctx context.Context, userID, convID uuid.UUID) ([]domain.UploadedDocument, error)
}
