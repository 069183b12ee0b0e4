package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/template"
)

func TestResolveType(t *testing.T) {
	tests := []struct {
		name string
		want domain.TemplateType
	}{
		{"purchase_agreement", domain.TemplatePurchaseAgreement},
		{"Ontario Purchase Agreement", domain.TemplatePurchaseAgreement},
		{"listing_agreement", domain.TemplateListingAgreement},
		{"MLS Listing Form", domain.TemplateListingAgreement},
		{"lease_agreement", domain.TemplateLeaseAgreement},
		{"Residential Lease", domain.TemplateLeaseAgreement},
		{"", domain.TemplatePurchaseAgreement},
		{"something else entirely", domain.TemplatePurchaseAgreement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, template.ResolveType(tt.name))
		})
	}
}

func validOntarioData() map[string]any {
	return map[string]any{
		"property_address": "123 Main Street, Toronto, ON M5V 3A8",
		"purchase_price":   float64(800000),
		"deposit_amount":   float64(40000),
		"deposit_due_date": "2026-09-15",
		"balance_due_date": "2026-11-30",
		"buyer_full_name":  "John Smith",
		"buyer_address":    "456 Current St, Toronto, ON M1A 2B3",
		"buyer_phone":      "(416) 555-0123",
		"buyer_email":      "buyer@example.com",
		"seller_full_name": "Mary Johnson",
		"seller_address":   "123 Main Street, Toronto, ON M5V 3A8",
		"seller_phone":     "(416) 555-0456",
		"seller_email":     "seller@example.com",
		"irrevocable_date": "2026-09-05",
		"irrevocable_time": "23:59",
	}
}

func TestValidateDocumentData_Valid(t *testing.T) {
	tmpl := template.OntarioPurchaseAgreement()

	result := template.ValidateDocumentData(&tmpl, validOntarioData())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.MissingRequired)
	assert.Empty(t, result.ValidationErrors)
}

func TestValidateDocumentData_MissingRequired(t *testing.T) {
	tmpl := template.OntarioPurchaseAgreement()
	data := validOntarioData()
	delete(data, "purchase_price")
	data["buyer_email"] = ""

	result := template.ValidateDocumentData(&tmpl, data)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.MissingRequired, "purchase_price")
	assert.Contains(t, result.MissingRequired, "buyer_email")
	assert.NotContains(t, result.MissingRequired, "property_address")
}

func TestValidateDocumentData_StringBounds(t *testing.T) {
	tmpl := template.OntarioPurchaseAgreement()
	data := validOntarioData()
	data["property_address"] = "short" // below min length 10

	result := template.ValidateDocumentData(&tmpl, data)

	require.False(t, result.IsValid)
	require.Len(t, result.ValidationErrors, 1)
	assert.Equal(t, "property_address", result.ValidationErrors[0].Field)
	assert.Contains(t, result.ValidationErrors[0].Message, "at least 10 characters")
}

func TestValidateDocumentData_Pattern(t *testing.T) {
	tmpl := template.OntarioPurchaseAgreement()
	data := validOntarioData()
	data["irrevocable_time"] = "25:99"

	result := template.ValidateDocumentData(&tmpl, data)

	require.False(t, result.IsValid)
	require.Len(t, result.ValidationErrors, 1)
	assert.Equal(t, "irrevocable_time", result.ValidationErrors[0].Field)
}

func TestValidateDocumentData_NumericBounds(t *testing.T) {
	tmpl := template.OntarioPurchaseAgreement()
	data := validOntarioData()
	data["purchase_price"] = float64(500) // below min value 1000

	result := template.ValidateDocumentData(&tmpl, data)

	require.False(t, result.IsValid)
	require.Len(t, result.ValidationErrors, 1)
	assert.Equal(t, "purchase_price", result.ValidationErrors[0].Field)
}

func TestValidateDocumentData_UndeclaredKeysIgnored(t *testing.T) {
	tmpl := template.OntarioPurchaseAgreement()
	data := validOntarioData()
	data["favourite_colour"] = "blue"

	result := template.ValidateDocumentData(&tmpl, data)

	assert.True(t, result.IsValid)
}

func TestRequiredFieldNames(t *testing.T) {
	tmpl := template.OntarioPurchaseAgreement()

	names := template.RequiredFieldNames(&tmpl)

	assert.Contains(t, names, "property_address")
	assert.Contains(t, names, "purchase_price")
	assert.Contains(t, names, "irrevocable_time")
	assert.NotContains(t, names, "inclusions")
}
