package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated broker or agent.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Brokerage    string    `db:"brokerage" json:"brokerage"`
	Phone        string    `db:"phone" json:"phone"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Conversation represents a chat thread between a user and the assistant.
type Conversation struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Message represents a single chat message, optionally carrying an attached file.
type Message struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	ConversationID uuid.UUID   `db:"conversation_id" json:"conversation_id"`
	Role           MessageRole `db:"role" json:"role"`
	Content        string      `db:"content" json:"content"`
	FileURL        string      `db:"file_url" json:"file_url,omitempty"`
	FileName       string      `db:"file_name" json:"file_name,omitempty"`
	FileType       string      `db:"file_type" json:"file_type,omitempty"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
}

// UploadedDocument stores metadata about a user-uploaded source PDF.
type UploadedDocument struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	ConversationID uuid.UUID `db:"conversation_id" json:"conversation_id"`
	Name           string    `db:"name" json:"name"`
	ContentType    string    `db:"content_type" json:"content_type"`
	FileSize       int64     `db:"file_size" json:"file_size"`
	S3Bucket       string    `db:"s3_bucket" json:"s3_bucket"`
	S3Key          string    `db:"s3_key" json:"s3_key"`
	FileURL        string    `db:"file_url" json:"file_url"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// FieldValidation holds the validation contract for a single template field.
type FieldValidation struct {
	Required  bool     `json:"required"`
	MinLength int      `json:"min_length,omitempty"`
	MaxLength int      `json:"max_length,omitempty"`
	MinValue  *float64 `json:"min_value,omitempty"`
	MaxValue  *float64 `json:"max_value,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
}

// TemplateField defines a single fillable field of a document template.
// It drives both UI rendering and server-side validation.
type TemplateField struct {
	Name        string          `json:"name"`
	Label       string          `json:"label"`
	Type        FieldType       `json:"type"`
	Description string          `json:"description,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Validation  FieldValidation `json:"validation"`
}

// DocumentTemplate is a named, versioned document definition with its source
// PDF and field schemas. Immutable once published; looked up by type+region.
type DocumentTemplate struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	Name           string       `db:"name" json:"name"`
	Type           TemplateType `db:"type" json:"type"`
	Region         string       `db:"region" json:"region"`
	Version        string       `db:"version" json:"version"`
	Description    string       `db:"description" json:"description"`
	PDFFormURL     string       `db:"pdf_form_url" json:"pdf_form_url"`
	RequiredFields FieldList    `db:"required_fields" json:"required_fields"`
	OptionalFields FieldList    `db:"optional_fields" json:"optional_fields"`
	IsActive       bool         `db:"is_active" json:"is_active"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updated_at"`
}

// AllFields returns required and optional fields as one slice.
func (t *DocumentTemplate) AllFields() []TemplateField {
	fields := make([]TemplateField, 0, len(t.RequiredFields)+len(t.OptionalFields))
	fields = append(fields, t.RequiredFields...)
	return append(fields, t.OptionalFields...)
}

// FieldByName looks up a declared field by its semantic name.
func (t *DocumentTemplate) FieldByName(name string) (TemplateField, bool) {
	for _, f := range t.AllFields() {
		if f.Name == name {
			return f, true
		}
	}
	return TemplateField{}, false
}

// DocumentExtraction is the append-only audit record of deriving structured
// field values from conversational input. Never mutated after creation.
type DocumentExtraction struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	ConversationID        uuid.UUID       `db:"conversation_id" json:"conversation_id"`
	TemplateID            uuid.UUID       `db:"template_id" json:"template_id"`
	UserInput             string          `db:"user_input" json:"user_input"`
	ExtractedFields       json.RawMessage `db:"extracted_fields" json:"extracted_fields"`
	ConfidenceScores      json.RawMessage `db:"confidence_scores" json:"confidence_scores"`
	MissingRequiredFields StringList      `db:"missing_required_fields" json:"missing_required_fields"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
}

// DocumentMetadata summarizes a generated document for listing and export.
type DocumentMetadata struct {
	PropertyAddress  string   `json:"property_address,omitempty"`
	DocumentTitle    string   `json:"document_title,omitempty"`
	PartiesInvolved  []string `json:"parties_involved,omitempty"`
	TransactionValue float64  `json:"transaction_value,omitempty"`
}

// GeneratedDocument is a filled PDF artifact produced from a template.
// Field edits trigger a full regeneration (new upload, new pdf_url, version
// bump), never an in-place patch. Never deleted in normal flow.
type GeneratedDocument struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	UserID         uuid.UUID      `db:"user_id" json:"user_id"`
	ConversationID uuid.UUID      `db:"conversation_id" json:"conversation_id"`
	TemplateID     uuid.UUID      `db:"template_id" json:"template_id"`
	DocumentData   DataMap        `db:"document_data" json:"document_data"`
	PDFURL         string         `db:"pdf_url" json:"pdf_url"`
	S3Bucket       string         `db:"s3_bucket" json:"s3_bucket"`
	S3Key          string         `db:"s3_key" json:"s3_key"`
	Status         DocumentStatus `db:"status" json:"status"`
	Version        int            `db:"version" json:"version"`
	Metadata       Metadata       `db:"metadata" json:"metadata"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// GenerationRequest is the structured payload the assistant embeds in a
// fenced JSON block to request document generation.
type GenerationRequest struct {
	Action   string         `json:"action"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}
