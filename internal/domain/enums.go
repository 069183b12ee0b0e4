package domain

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// TemplateType classifies document templates.
type TemplateType string

const (
	TemplatePurchaseAgreement TemplateType = "purchase_agreement"
	TemplateListingAgreement  TemplateType = "listing_agreement"
	TemplateLeaseAgreement    TemplateType = "lease_agreement"
)

// FieldType enumerates the value kinds a template field can declare.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldCurrency FieldType = "currency"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldAddress  FieldType = "address"
	FieldBoolean  FieldType = "boolean"
)

// DocumentStatus is the lifecycle state of a generated document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusPreview   DocumentStatus = "preview"
	StatusFinalized DocumentStatus = "finalized"
)

var statusRank = map[DocumentStatus]int{
	StatusDraft:     0,
	StatusPreview:   1,
	StatusFinalized: 2,
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Transitions are monotonic draft -> preview -> finalized; re-finalizing an
// already finalized document is allowed (idempotent no-op).
func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	if s == StatusFinalized && next == StatusFinalized {
		return true
	}
	return to > from
}

// Valid reports whether s is a known status value.
func (s DocumentStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// PDFContentType is the only content type accepted for uploads.
const PDFContentType = "application/pdf"

// MaxUploadSizeBytes is the upload size cap (10MB).
const MaxUploadSizeBytes = 10 * 1024 * 1024
