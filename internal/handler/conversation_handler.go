package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brokerdoc/internal/service"
)

// ConversationHandler handles conversation endpoints.
type ConversationHandler struct {
	convService service.ConversationService
}

// NewConversationHandler creates a new ConversationHandler.
func NewConversationHandler(convService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{convService: convService}
}

type createConversationInput struct {
	Title string `json:"title"`
}

type renameConversationInput struct {
	Title string `json:"title" binding:"required"`
}

// Create handles POST /api/v1/conversations
func (h *ConversationHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input createConversationInput
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	conv, err := h.convService.Create(c.Request.Context(), userID, input.Title)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, conv)
}

// List handles GET /api/v1/conversations
func (h *ConversationHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	convs, err := h.convService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, convs)
}

// GetByID handles GET /api/v1/conversations/:id
func (h *ConversationHandler) GetByID(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid conversation id")
		return
	}

	conv, err := h.convService.Get(c.Request.Context(), userID, convID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, conv)
}

// Rename handles PATCH /api/v1/conversations/:id
func (h *ConversationHandler) Rename(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid conversation id")
		return
	}

	var input renameConversationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.convService.Rename(c.Request.Context(), userID, convID, input.Title); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "conversation renamed"})
}

// Delete handles DELETE /api/v1/conversations/:id
func (h *ConversationHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid conversation id")
		return
	}

	if err := h.convService.Delete(c.Request.Context(), userID, convID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "conversation deleted"})
}

// Messages handles GET /api/v1/conversations/:id/messages
func (h *ConversationHandler) Messages(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid conversation id")
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	msgs, err := h.convService.Messages(c.Request.Context(), userID, convID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, msgs)
}
