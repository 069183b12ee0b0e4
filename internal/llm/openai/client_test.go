package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerdoc/internal/config"
	"brokerdoc/internal/domain"
	"brokerdoc/internal/llm/openai"
	"brokerdoc/internal/port"
)

func sseChunk(content string) string {
	payload, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"delta": map[string]string{"content": content}},
		},
	})
	return fmt.Sprintf("data: %s\n\n", payload)
}

func newTestClient(serverURL string) *openai.Client {
	return openai.NewClient(&config.ChatConfig{
		BaseURL:     serverURL,
		APIKey:      "test-key",
		Model:       "gpt-4",
		MaxTokens:   2000,
		Temperature: 0.7,
	})
}

func TestStreamCompletion(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = fmt.Fprint(w, sseChunk("Common conditions "))
		_, _ = fmt.Fprint(w, sseChunk("include financing."))
		_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	var deltas []string
	full, err := client.StreamCompletion(context.Background(),
		[]port.ChatMessage{{Role: "user", Content: "What conditions should I include?"}},
		func(delta string) error {
			deltas = append(deltas, delta)
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, "Common conditions include financing.", full)
	assert.Equal(t, []string{"Common conditions ", "include financing."}, deltas)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4", gotBody["model"])
	assert.Equal(t, true, gotBody["stream"])
	assert.Equal(t, float64(2000), gotBody["max_tokens"])
}

func TestStreamCompletion_SkipsEmptyAndMalformedFrames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, ": keep-alive comment\n\n")
		_, _ = fmt.Fprint(w, "data: not json\n\n")
		_, _ = fmt.Fprint(w, sseChunk("hello"))
		_, _ = fmt.Fprint(w, "data: {\"choices\":[]}\n\n")
		_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	full, err := newTestClient(srv.URL).StreamCompletion(context.Background(),
		[]port.ChatMessage{{Role: "user", Content: "hi"}},
		func(string) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, "hello", full)
}

func TestStreamCompletion_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).StreamCompletion(context.Background(),
		[]port.ChatMessage{{Role: "user", Content: "hi"}},
		func(string) error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.Contains(t, err.Error(), "429")
}

func TestStreamCompletion_OnDeltaAbortsStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, sseChunk("first"))
		_, _ = fmt.Fprint(w, sseChunk("second"))
		_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	abort := errors.New("client went away")
	_, err := newTestClient(srv.URL).StreamCompletion(context.Background(),
		[]port.ChatMessage{{Role: "user", Content: "hi"}},
		func(string) error { return abort })

	require.Error(t, err)
	assert.ErrorIs(t, err, abort)
}
