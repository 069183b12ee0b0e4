package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brokerdoc/internal/domain"
)

func TestDocumentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.DocumentStatus
		to   domain.DocumentStatus
		want bool
	}{
		{"draft to preview", domain.StatusDraft, domain.StatusPreview, true},
		{"draft to finalized", domain.StatusDraft, domain.StatusFinalized, true},
		{"preview to finalized", domain.StatusPreview, domain.StatusFinalized, true},
		{"finalized again is idempotent", domain.StatusFinalized, domain.StatusFinalized, true},
		{"preview back to draft", domain.StatusPreview, domain.StatusDraft, false},
		{"finalized back to preview", domain.StatusFinalized, domain.StatusPreview, false},
		{"finalized back to draft", domain.StatusFinalized, domain.StatusDraft, false},
		{"draft to draft", domain.StatusDraft, domain.StatusDraft, false},
		{"preview to preview", domain.StatusPreview, domain.StatusPreview, false},
		{"unknown source", domain.DocumentStatus("sent"), domain.StatusFinalized, false},
		{"unknown target", domain.StatusDraft, domain.DocumentStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDocumentStatus_Valid(t *testing.T) {
	assert.True(t, domain.StatusDraft.Valid())
	assert.True(t, domain.StatusPreview.Valid())
	assert.True(t, domain.StatusFinalized.Valid())
	assert.False(t, domain.DocumentStatus("sent").Valid())
	assert.False(t, domain.DocumentStatus("").Valid())
}
