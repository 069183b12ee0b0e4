package template

import (
	"fmt"
	"regexp"
	"strings"

	"brokerdoc/internal/domain"
)

// DefaultRegion scopes template resolution; only Ontario forms are published.
const DefaultRegion = "ontario"

// ResolveType maps a free-form template name from an assistant payload to a
// template type by keyword match. Anything unrecognized falls back to the
// purchase agreement.
func ResolveType(name string) domain.TemplateType {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "listing"):
		return domain.TemplateListingAgreement
	case strings.Contains(n, "lease"):
		return domain.TemplateLeaseAgreement
	default:
		return domain.TemplatePurchaseAgreement
	}
}

// RequiredFieldNames returns the semantic names of all required fields.
func RequiredFieldNames(tmpl *domain.DocumentTemplate) []string {
	names := make([]string, 0, len(tmpl.RequiredFields))
	for _, f := range tmpl.RequiredFields {
		names = append(names, f.Name)
	}
	return names
}

// ValidationError describes a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of validating document data against a
// template's field schema.
type ValidationResult struct {
	IsValid          bool              `json:"is_valid"`
	MissingRequired  []string          `json:"missing_required"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

// ValidateDocumentData checks data against the template's declared fields:
// required presence, string length bounds, regex patterns, and numeric
// bounds. Keys not declared by the template are ignored (preserved but
// unmapped at render time).
func ValidateDocumentData(tmpl *domain.DocumentTemplate, data map[string]any) ValidationResult {
	result := ValidationResult{}

	for _, f := range tmpl.RequiredFields {
		v, ok := data[f.Name]
		if !ok || v == nil || v == "" {
			result.MissingRequired = append(result.MissingRequired, f.Name)
		}
	}

	for _, f := range tmpl.AllFields() {
		v, ok := data[f.Name]
		if !ok || v == nil {
			continue
		}
		rule := f.Validation

		switch value := v.(type) {
		case string:
			if value == "" {
				continue
			}
			if rule.MinLength > 0 && len(value) < rule.MinLength {
				result.ValidationErrors = append(result.ValidationErrors, ValidationError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s must be at least %d characters long", f.Label, rule.MinLength),
				})
			}
			if rule.MaxLength > 0 && len(value) > rule.MaxLength {
				result.ValidationErrors = append(result.ValidationErrors, ValidationError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s must be no more than %d characters long", f.Label, rule.MaxLength),
				})
			}
			if rule.Pattern != "" {
				re, err := regexp.Compile(rule.Pattern)
				if err == nil && !re.MatchString(value) {
					result.ValidationErrors = append(result.ValidationErrors, ValidationError{
						Field:   f.Name,
						Message: fmt.Sprintf("%s format is invalid", f.Label),
					})
				}
			}
		case float64, int, int64:
			num := toFloat(value)
			if rule.MinValue != nil && num < *rule.MinValue {
				result.ValidationErrors = append(result.ValidationErrors, ValidationError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s must be at least %v", f.Label, *rule.MinValue),
				})
			}
			if rule.MaxValue != nil && num > *rule.MaxValue {
				result.ValidationErrors = append(result.ValidationErrors, ValidationError{
					Field:   f.Name,
					Message: fmt.Sprintf("%s must be no more than %v", f.Label, *rule.MaxValue),
				})
			}
		}
	}

	result.IsValid = len(result.MissingRequired) == 0 && len(result.ValidationErrors) == 0
	return result
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
