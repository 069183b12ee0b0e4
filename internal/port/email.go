package port

import "context"

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendDocumentFinalizedEmail(ctx context.Context, toEmail, toName, documentTitle, previewURL string) error
}
