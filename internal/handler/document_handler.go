package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brokerdoc/internal/service"
)

// DocumentHandler handles generated document endpoints.
type DocumentHandler struct {
	docService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

type fillTemplateInput struct {
	TemplateID     uuid.UUID      `json:"templateId" binding:"required"`
	ConversationID uuid.UUID      `json:"conversationId" binding:"required"`
	DocumentData   map[string]any `json:"documentData" binding:"required"`
}

type updateFieldInput struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// FillTemplate handles POST /api/v1/documents/fill-template
// @Summary      Generate a filled PDF from a template
// @Description  Fills the template's PDF with the supplied data, uploads the artifact, and records a preview document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request body fillTemplateInput true "Fill request"
// @Success      201 {object} APIResponse{data=service.GenerateOutput}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /documents/fill-template [post]
func (h *DocumentHandler) FillTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input fillTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.docService.Generate(c.Request.Context(), service.GenerateInput{
		UserID:         userID,
		ConversationID: input.ConversationID,
		TemplateID:     &input.TemplateID,
		DocumentData:   input.DocumentData,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, out)
}

// List handles GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	docs, err := h.docService.List(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, docs)
}

// GetByID handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid document id")
		return
	}

	doc, err := h.docService.Get(c.Request.Context(), userID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// UpdateField handles PATCH /api/v1/documents/:id/fields
// @Summary      Update one document field
// @Description  Merges the field into the document data and regenerates the PDF with a version bump
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "Document UUID"
// @Param        request body updateFieldInput true "Field update"
// @Success      200 {object} APIResponse{data=service.GenerateOutput}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /documents/{id}/fields [patch]
func (h *DocumentHandler) UpdateField(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid document id")
		return
	}

	var input updateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.docService.UpdateField(c.Request.Context(), userID, docID, input.Field, input.Value)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// Finalize handles POST /api/v1/documents/:id/finalize
func (h *DocumentHandler) Finalize(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid document id")
		return
	}

	doc, err := h.docService.Finalize(c.Request.Context(), userID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Export handles GET /api/v1/documents/export
// @Summary      Export the caller's generated documents as xlsx
// @Tags         documents
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {string} string "xlsx workbook"
// @Failure      401 {object} APIResponse
// @Security     BearerAuth
// @Router       /documents/export [get]
func (h *DocumentHandler) Export(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("documents-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.docService.ExportXLSX(c.Request.Context(), userID, c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}
