package port

import "context"

// ChatMessage is a single turn of a chat completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter abstracts a streaming LLM chat-completion provider.
// StreamCompletion invokes onDelta for every content chunk as it arrives and
// returns the fully accumulated assistant text. A non-nil error from onDelta
// aborts the stream.
type ChatCompleter interface {
	StreamCompletion(ctx context.Context, messages []ChatMessage, onDelta func(delta string) error) (string, error)
}
