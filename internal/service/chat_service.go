package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"brokerdoc/internal/docgen"
	"brokerdoc/internal/domain"
	"brokerdoc/internal/port"
)

// systemPrompt frames the assistant for real-estate document work.
const systemPrompt = `You are BrokerDoc AI, an intelligent assistant for real estate brokers and agents. Your role is to help with document preparation, analysis, and information extraction for real estate transactions.

Key capabilities:
- Analyze real estate documents (contracts, listings, disclosures, etc.)
- Extract key information and identify missing required fields
- Provide guidance on document completion and compliance
- Answer questions about real estate processes and requirements
- Help organize and prepare document packages for transactions

When a user uploads a document:
1. Analyze the document type and purpose
2. Extract key information (property details, parties, dates, amounts, etc.)
3. Identify any missing required fields or information
4. Provide clear, actionable recommendations
5. Ask clarifying questions if needed

When the user asks you to prepare or generate a document and you have gathered the needed details, include exactly one fenced JSON block in your reply of the form:
` + "```json\n{\"action\": \"generate_document\", \"template\": \"<template name>\", \"data\": {\"<field>\": \"<value>\"}}\n```" + `

Always be professional, accurate, and helpful. Focus on real estate-specific knowledge and compliance requirements.`

const titleMaxLen = 50

// ChatInput is the DTO for a streamed chat turn.
type ChatInput struct {
	UserID         uuid.UUID
	ConversationID uuid.UUID
	Message        string
	FileURL        string
	FileName       string
	FileType       string
}

// StreamEvents receives the pieces of a chat turn as they become available.
// OnContent fires per assistant text delta; OnGeneration fires at most once,
// after the stream, when the assistant requested a document and it was
// generated. A non-nil error from either callback aborts the turn.
type StreamEvents struct {
	OnContent    func(delta string) error
	OnGeneration func(req *domain.GenerationRequest, out *GenerateOutput) error
}

// ChatService runs the chat turn state machine: persist, stream, detect,
// orchestrate.
type ChatService interface {
	Stream(ctx context.Context, input ChatInput, events StreamEvents) error
}

type chatService struct {
	convRepo    port.ConversationRepository
	msgRepo     port.MessageRepository
	completer   port.ChatCompleter
	docs        DocumentService
	historySize int
}

// NewChatService creates a new ChatService implementation.
func NewChatService(
	convRepo port.ConversationRepository,
	msgRepo port.MessageRepository,
	completer port.ChatCompleter,
	docs DocumentService,
	historySize int,
) ChatService {
	if historySize <= 0 {
		historySize = 20
	}
	return &chatService{
		convRepo:    convRepo,
		msgRepo:     msgRepo,
		completer:   completer,
		docs:        docs,
		historySize: historySize,
	}
}

// Stream executes one chat turn. The user message is persisted before the
// provider is called; the assistant message is persisted after the stream
// completes, where a failure is logged only since the content already
// reached the client.
func (s *chatService) Stream(ctx context.Context, input ChatInput, events StreamEvents) error {
	if _, err := s.convRepo.GetByID(ctx, input.UserID, input.ConversationID); err != nil {
		return err
	}

	userMsg := &domain.Message{
		ID:             uuid.New(),
		ConversationID: input.ConversationID,
		Role:           domain.RoleUser,
		Content:        input.Message,
		FileURL:        input.FileURL,
		FileName:       input.FileName,
		FileType:       input.FileType,
	}
	if err := s.msgRepo.Create(ctx, userMsg); err != nil {
		return fmt.Errorf("chatService.Stream: saving user message: %w", err)
	}

	history, err := s.msgRepo.ListByConversation(ctx, input.ConversationID, s.historySize)
	if err != nil {
		return fmt.Errorf("chatService.Stream: loading history: %w", err)
	}

	messages := make([]port.ChatMessage, 0, len(history)+1)
	messages = append(messages, port.ChatMessage{Role: "system", Content: systemPrompt})
	for _, msg := range history {
		content := msg.Content
		if msg.FileName != "" {
			content += fmt.Sprintf(" [File: %s]", msg.FileName)
		}
		messages = append(messages, port.ChatMessage{Role: string(msg.Role), Content: content})
	}

	assistantText, err := s.completer.StreamCompletion(ctx, messages, events.OnContent)
	if err != nil {
		return fmt.Errorf("chatService.Stream: %w", err)
	}

	assistantMsg := &domain.Message{
		ID:             uuid.New(),
		ConversationID: input.ConversationID,
		Role:           domain.RoleAssistant,
		Content:        assistantText,
	}
	if err := s.msgRepo.Create(ctx, assistantMsg); err != nil {
		log.Printf("chatService.Stream: saving assistant message: %v", err)
	}

	// First exchange: name the conversation after the opening message.
	if len(history) <= 1 {
		title := input.Message
		// Truncate on rune boundaries; a byte slice can split a multi-byte
		// character and produce invalid UTF-8, which Postgres rejects.
		if runes := []rune(title); len(runes) > titleMaxLen {
			title = string(runes[:titleMaxLen]) + "..."
		}
		if err := s.convRepo.UpdateTitle(ctx, input.UserID, input.ConversationID, title); err != nil {
			log.Printf("chatService.Stream: updating title: %v", err)
		}
	}
	if err := s.convRepo.Touch(ctx, input.ConversationID); err != nil {
		log.Printf("chatService.Stream: touching conversation: %v", err)
	}

	result := docgen.ExtractRequest(assistantText)
	switch result.Outcome {
	case docgen.Malformed:
		log.Printf("chatService.Stream: ignoring malformed generation payload: %s", result.Reason)
	case docgen.Found:
		out, err := s.docs.Generate(ctx, GenerateInput{
			UserID:         input.UserID,
			ConversationID: input.ConversationID,
			TemplateName:   result.Request.Template,
			DocumentData:   result.Request.Data,
			UserInput:      input.Message,
		})
		if err != nil {
			return fmt.Errorf("chatService.Stream: generating document: %w", err)
		}
		if events.OnGeneration != nil {
			if err := events.OnGeneration(result.Request, out); err != nil {
				return fmt.Errorf("chatService.Stream: delivering generation event: %w", err)
			}
		}
	}

	return nil
}
