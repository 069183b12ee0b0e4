package port

import "context"

// PDFFiller produces filled PDF bytes from a template PDF and a semantic
// field-value map. Per-field mapping misses are non-fatal; only load or
// render failures return an error.
type PDFFiller interface {
	Fill(ctx context.Context, pdfBytes []byte, data map[string]any) ([]byte, error)
}
