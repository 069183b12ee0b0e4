package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDocumentFinalizedEmail(ctx context.Context, toEmail, toName, documentTitle, previewURL string) error {
	args := m.Called(ctx, toEmail, toName, documentTitle, previewURL)
	return args.Error(0)
}
