package handler

import (
	"time"

	"github.com/google/uuid"

	"brokerdoc/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required" example:"jane.doe@brokerage.ca"`
	Password  string `json:"password" binding:"required" example:"securepassword123"`
	FullName  string `json:"full_name" binding:"required" example:"Jane Doe"`
	Brokerage string `json:"brokerage" example:"Maple Leaf Realty"`
	Phone     string `json:"phone" example:"+1 416 555 0100"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane.doe@brokerage.ca"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// ChatRequest represents the streamed chat request body.
type ChatRequest struct {
	ConversationID uuid.UUID `json:"conversationId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Message        string    `json:"message" binding:"required" example:"Prepare a purchase agreement for 123 Main St at $800,000"`
	FileURL        string    `json:"fileUrl" example:"https://brokerdoc-documents.s3.ca-central-1.amazonaws.com/users/.../listing.pdf"`
	FileName       string    `json:"fileName" example:"listing.pdf"`
	FileType       string    `json:"fileType" example:"application/pdf"`
}

// FillTemplateRequest represents the document fill request body.
type FillTemplateRequest struct {
	TemplateID     uuid.UUID      `json:"templateId" binding:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
	ConversationID uuid.UUID      `json:"conversationId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	DocumentData   map[string]any `json:"documentData" binding:"required"`
}

// UpdateFieldRequest represents the single-field update request body.
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required" example:"purchase_price"`
	Value any    `json:"value"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// GeneratedDocumentResponse represents a generated document with preview URL.
type GeneratedDocumentResponse struct {
	Document   domain.GeneratedDocument `json:"document"`
	PreviewURL string                   `json:"previewUrl" example:"https://brokerdoc-generated-documents.s3.ca-central-1.amazonaws.com/users/.../agreement.pdf"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
