package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPDFFiller is a mock implementation of port.PDFFiller.
type MockPDFFiller struct {
	mock.Mock
}

func (m *MockPDFFiller) Fill(ctx context.Context, pdfBytes []byte, data map[string]any) ([]byte, error) {
	args := m.Called(ctx, pdfBytes, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
