package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"brokerdoc/internal/port"
)

// MockChatCompleter is a mock implementation of port.ChatCompleter. Deltas
// set via SetDeltas are pushed through onDelta before the canned result is
// returned, so tests can exercise streaming behavior.
type MockChatCompleter struct {
	mock.Mock
	deltas []string
}

// SetDeltas configures the content chunks replayed to onDelta.
func (m *MockChatCompleter) SetDeltas(deltas ...string) {
	m.deltas = deltas
}

func (m *MockChatCompleter) StreamCompletion(ctx context.Context, messages []port.ChatMessage, onDelta func(delta string) error) (string, error) {
	for _, d := range m.deltas {
		if err := onDelta(d); err != nil {
			return "", err
		}
	}
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}
