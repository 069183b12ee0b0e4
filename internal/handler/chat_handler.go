package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/service"
)

// ChatHandler handles the streaming chat endpoint.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	ConversationID uuid.UUID `json:"conversationId" binding:"required"`
	Message        string    `json:"message" binding:"required"`
	FileURL        string    `json:"fileUrl"`
	FileName       string    `json:"fileName"`
	FileType       string    `json:"fileType"`
}

type contentEvent struct {
	Content string `json:"content"`
}

type generationEvent struct {
	Action     string                    `json:"action"`
	Request    *domain.GenerationRequest `json:"request"`
	Document   *domain.GeneratedDocument `json:"document"`
	PreviewURL string                    `json:"previewUrl"`
}

type errorEvent struct {
	Error string `json:"error"`
}

// Stream handles POST /api/v1/chat
// @Summary      Stream a chat completion
// @Description  Streams assistant deltas over SSE; may emit a document_generation event before the [DONE] terminator
// @Tags         chat
// @Accept       json
// @Produce      text/event-stream
// @Param        request body chatRequest true "Chat turn"
// @Success      200 {string} string "SSE stream"
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Security     BearerAuth
// @Router       /chat [post]
func (h *ChatHandler) Stream(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	flusher, canFlush := c.Writer.(http.Flusher)
	writeEvent := func(payload any) error {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
			return err
		}
		if canFlush {
			flusher.Flush()
		}
		return nil
	}

	events := service.StreamEvents{
		OnContent: func(delta string) error {
			return writeEvent(contentEvent{Content: delta})
		},
		OnGeneration: func(genReq *domain.GenerationRequest, out *service.GenerateOutput) error {
			return writeEvent(generationEvent{
				Action:     "document_generation",
				Request:    genReq,
				Document:   out.Document,
				PreviewURL: out.PreviewURL,
			})
		},
	}

	err := h.chatService.Stream(c.Request.Context(), service.ChatInput{
		UserID:         userID,
		ConversationID: req.ConversationID,
		Message:        req.Message,
		FileURL:        req.FileURL,
		FileName:       req.FileName,
		FileType:       req.FileType,
	}, events)
	if err != nil {
		// Headers are already out; surface the failure as an SSE event.
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] chat stream error: %v", requestID, err)
		_, _, msg := MapDomainError(err)
		_ = writeEvent(errorEvent{Error: msg})
	}

	_, _ = fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	if canFlush {
		flusher.Flush()
	}
}
