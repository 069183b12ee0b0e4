package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/handler"
	"brokerdoc/internal/template"
	"brokerdoc/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTemplateRouter(svc *mocks.MockTemplateService) *gin.Engine {
	h := handler.NewTemplateHandler(svc)
	r := gin.New()
	r.GET("/templates", h.List)
	r.GET("/templates/resolve", h.Resolve)
	r.GET("/templates/:id", h.GetByID)
	r.POST("/templates/:id/validate", h.Validate)
	return r
}

func ontarioPurchaseTemplate() *domain.DocumentTemplate {
	return &domain.DocumentTemplate{
		ID:     uuid.New(),
		Name:   "Ontario Agreement of Purchase and Sale",
		Type:   domain.TemplatePurchaseAgreement,
		Region: "ontario",
	}
}

func TestTemplateHandler_List(t *testing.T) {
	svc := new(mocks.MockTemplateService)
	svc.On("List", mock.Anything, domain.TemplateLeaseAgreement, "ontario").
		Return([]domain.DocumentTemplate{*ontarioPurchaseTemplate()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates?type=lease_agreement&region=ontario", nil)
	newTemplateRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	svc.AssertExpectations(t)
}

func TestTemplateHandler_GetByID_InvalidUUID(t *testing.T) {
	svc := new(mocks.MockTemplateService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates/not-a-uuid", nil)
	newTemplateRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	svc.AssertNotCalled(t, "Get")
}

func TestTemplateHandler_Resolve_PassesKeywordAndRegion(t *testing.T) {
	svc := new(mocks.MockTemplateService)
	svc.On("Resolve", mock.Anything, "listing agreement", "ontario").
		Return(ontarioPurchaseTemplate(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates/resolve?keyword=listing+agreement&region=ontario", nil)
	newTemplateRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ontario Agreement of Purchase and Sale")
	svc.AssertExpectations(t)
}

func TestTemplateHandler_Resolve_NoPublishedTemplate(t *testing.T) {
	svc := new(mocks.MockTemplateService)
	svc.On("Resolve", mock.Anything, "lease", "").
		Return(nil, domain.ErrTemplateNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates/resolve?keyword=lease", nil)
	newTemplateRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "TEMPLATE_NOT_FOUND")
}

func TestTemplateHandler_Validate_ReportsMissingFields(t *testing.T) {
	tmplID := uuid.New()
	svc := new(mocks.MockTemplateService)
	svc.On("Validate", mock.Anything, tmplID, map[string]any{"purchase_price": float64(800000)}).
		Return(&template.ValidationResult{
			IsValid:         false,
			MissingRequired: []string{"buyer_full_name", "property_address"},
		}, nil)

	body := `{"documentData":{"purchase_price":800000}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/templates/"+tmplID.String()+"/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newTemplateRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_valid":false`)
	assert.Contains(t, w.Body.String(), "buyer_full_name")
	svc.AssertExpectations(t)
}

func TestTemplateHandler_Validate_RequiresDocumentData(t *testing.T) {
	svc := new(mocks.MockTemplateService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/templates/"+uuid.NewString()+"/validate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	newTemplateRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Validate")
}

func TestTemplateHandler_Validate_InvalidUUID(t *testing.T) {
	svc := new(mocks.MockTemplateService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/templates/nope/validate", strings.NewReader(`{"documentData":{}}`))
	req.Header.Set("Content-Type", "application/json")
	newTemplateRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid template id")
	svc.AssertNotCalled(t, "Validate")
}
