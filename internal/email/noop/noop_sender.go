package noop

import (
	"context"
	"log"

	"brokerdoc/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDocumentFinalizedEmail(_ context.Context, toEmail, toName, documentTitle, documentURL string) error {
	log.Printf("[NOOP EMAIL] Document finalized notice for %s (%s): %q %s", toName, toEmail, documentTitle, documentURL)
	return nil
}
