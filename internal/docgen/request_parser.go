// Package docgen extracts structured document-generation payloads from
// free-form assistant text.
package docgen

import (
	"encoding/json"
	"regexp"
	"strings"

	"brokerdoc/internal/domain"
)

// ActionGenerateDocument is the action value that marks a generation payload.
const ActionGenerateDocument = "generate_document"

// Outcome tags the result of scanning assistant text for a payload.
type Outcome int

const (
	// NotFound means no fenced JSON block was present.
	NotFound Outcome = iota
	// Malformed means a fenced block was present but its JSON did not parse
	// or did not carry the expected action. Treated as a soft miss by
	// callers, never propagated as an error.
	Malformed
	// Found means exactly one valid generation request was extracted.
	Found
)

// Result is the tagged outcome of payload extraction.
type Result struct {
	Outcome Outcome
	Request *domain.GenerationRequest
	Reason  string
}

// fencedJSON matches the first ```json ... ``` block (plain ``` fences also
// accepted). The assistant is prompted to emit exactly one.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ExtractRequest scans assistant text for a fenced JSON block of shape
// {action: "generate_document", template: string, data: object}.
func ExtractRequest(text string) Result {
	m := fencedJSON.FindStringSubmatch(text)
	if m == nil {
		return Result{Outcome: NotFound}
	}

	var req domain.GenerationRequest
	if err := json.Unmarshal([]byte(m[1]), &req); err != nil {
		return Result{Outcome: Malformed, Reason: "invalid JSON: " + err.Error()}
	}
	if req.Action != ActionGenerateDocument {
		return Result{Outcome: Malformed, Reason: "unexpected action " + quote(req.Action)}
	}
	if strings.TrimSpace(req.Template) == "" {
		return Result{Outcome: Malformed, Reason: "missing template name"}
	}
	if req.Data == nil {
		req.Data = map[string]any{}
	}
	return Result{Outcome: Found, Request: &req}
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	return `"` + s + `"`
}
