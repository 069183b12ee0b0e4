package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brokerdoc/internal/service"
)

// UploadHandler handles document upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /api/v1/uploads
// @Summary      Upload a source PDF
// @Description  Accepts a multipart PDF up to 10MB, stores it, and records its metadata
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "PDF file"
// @Param        conversationId formData string true "Conversation UUID"
// @Success      201 {object} APIResponse{data=domain.UploadedDocument}
// @Failure      400 {object} APIResponse
// @Failure      413 {object} APIResponse
// @Security     BearerAuth
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	convID, err := uuid.Parse(c.PostForm("conversationId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid or missing conversationId")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "could not open uploaded file")
		return
	}
	defer func() { _ = file.Close() }()

	doc, err := h.uploadService.Upload(c.Request.Context(), service.UploadInput{
		UserID:         userID,
		ConversationID: convID,
		File:           file,
		Header:         fileHeader,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// List handles GET /api/v1/conversations/:id/uploads
func (h *UploadHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid conversation id")
		return
	}

	docs, err := h.uploadService.ListByConversation(c.Request.Context(), userID, convID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, docs)
}

// DownloadURL handles GET /api/v1/uploads/:id/download
func (h *UploadHandler) DownloadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid document id")
		return
	}

	url, err := h.uploadService.GetDownloadURL(c.Request.Context(), userID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
