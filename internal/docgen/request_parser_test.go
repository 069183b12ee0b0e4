package docgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerdoc/internal/docgen"
)

func TestExtractRequest_Found(t *testing.T) {
	text := "I've prepared the agreement for you.\n\n" +
		"```json\n" +
		`{"action":"generate_document","template":"purchase_agreement","data":{"property_address":"123 Main St","purchase_price":800000}}` +
		"\n```\n\nLet me know if anything should change."

	res := docgen.ExtractRequest(text)

	require.Equal(t, docgen.Found, res.Outcome)
	require.NotNil(t, res.Request)
	assert.Equal(t, "generate_document", res.Request.Action)
	assert.Equal(t, "purchase_agreement", res.Request.Template)
	assert.Equal(t, "123 Main St", res.Request.Data["property_address"])
	assert.Equal(t, float64(800000), res.Request.Data["purchase_price"])
}

func TestExtractRequest_PlainFence(t *testing.T) {
	text := "```\n" +
		`{"action":"generate_document","template":"listing_agreement","data":{}}` +
		"\n```"

	res := docgen.ExtractRequest(text)

	require.Equal(t, docgen.Found, res.Outcome)
	assert.Equal(t, "listing_agreement", res.Request.Template)
}

func TestExtractRequest_NilDataDefaultsToEmptyMap(t *testing.T) {
	text := "```json\n" +
		`{"action":"generate_document","template":"purchase_agreement"}` +
		"\n```"

	res := docgen.ExtractRequest(text)

	require.Equal(t, docgen.Found, res.Outcome)
	require.NotNil(t, res.Request.Data)
	assert.Empty(t, res.Request.Data)
}

func TestExtractRequest_NotFound(t *testing.T) {
	res := docgen.ExtractRequest("Happy to help! What's the property address?")

	assert.Equal(t, docgen.NotFound, res.Outcome)
	assert.Nil(t, res.Request)
}

func TestExtractRequest_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "invalid JSON",
			text: "```json\n{\"action\": \"generate_document\", \"template\": }\n```",
		},
		{
			name: "wrong action",
			text: "```json\n" + `{"action":"summarize","template":"purchase_agreement","data":{}}` + "\n```",
		},
		{
			name: "missing template",
			text: "```json\n" + `{"action":"generate_document","data":{}}` + "\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := docgen.ExtractRequest(tt.text)

			assert.Equal(t, docgen.Malformed, res.Outcome)
			assert.Nil(t, res.Request)
			assert.NotEmpty(t, res.Reason)
		})
	}
}

func TestExtractRequest_FirstBlockWins(t *testing.T) {
	text := "```json\n" +
		`{"action":"generate_document","template":"purchase_agreement","data":{"purchase_price":1}}` +
		"\n```\n" +
		"```json\n" +
		`{"action":"generate_document","template":"lease_agreement","data":{}}` +
		"\n```"

	res := docgen.ExtractRequest(text)

	require.Equal(t, docgen.Found, res.Outcome)
	assert.Equal(t, "purchase_agreement", res.Request.Template)
}
