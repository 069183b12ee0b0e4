package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/service"
)

// TemplateHandler handles document template endpoints.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List handles GET /api/v1/templates
// @Summary      List active document templates
// @Tags         templates
// @Produce      json
// @Param        type query string false "Template type (purchase_agreement, listing_agreement, lease_agreement)"
// @Param        region query string false "Region (e.g. ontario)"
// @Success      200 {object} APIResponse{data=[]domain.DocumentTemplate}
// @Failure      401 {object} APIResponse
// @Security     BearerAuth
// @Router       /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	typ := domain.TemplateType(c.Query("type"))
	region := c.Query("region")

	tmpls, err := h.templateService.List(c.Request.Context(), typ, region)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tmpls)
}

// Resolve handles GET /api/v1/templates/resolve
// @Summary      Resolve a free-form keyword to the active template
// @Description  Maps a keyword like "listing" or "lease" to the published template for the region; unknown keywords fall back to the purchase agreement
// @Tags         templates
// @Produce      json
// @Param        keyword query string false "Free-form template keyword"
// @Param        region query string false "Region (defaults to ontario)"
// @Success      200 {object} APIResponse{data=domain.DocumentTemplate}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /templates/resolve [get]
func (h *TemplateHandler) Resolve(c *gin.Context) {
	keyword := c.Query("keyword")
	region := c.Query("region")

	tmpl, err := h.templateService.Resolve(c.Request.Context(), keyword, region)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tmpl)
}

// GetByID handles GET /api/v1/templates/:id
func (h *TemplateHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid template id")
		return
	}

	tmpl, err := h.templateService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tmpl)
}

type validateTemplateInput struct {
	DocumentData map[string]any `json:"documentData" binding:"required"`
}

// Validate handles POST /api/v1/templates/:id/validate
// @Summary      Validate document data against a template's field schema
// @Description  Dry-run check of the data a fill request would submit; reports missing required fields and per-field rule violations without generating anything
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id path string true "Template UUID"
// @Param        request body validateTemplateInput true "Document data to check"
// @Success      200 {object} APIResponse{data=template.ValidationResult}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /templates/{id}/validate [post]
func (h *TemplateHandler) Validate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid template id")
		return
	}

	var input validateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.templateService.Validate(c.Request.Context(), id, input.DocumentData)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
