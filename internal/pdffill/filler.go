package pdffill

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"brokerdoc/internal/port"
)

// FormFiller writes mapped field values into a loaded PDF. Implementations
// differ in capability: native AcroForm fill vs. coordinate overlay.
type FormFiller interface {
	Name() string
	Fill(pdfBytes []byte, values map[string]FieldValue) ([]byte, error)
}

var _ port.PDFFiller = (*Filler)(nil)

// Filler implements port.PDFFiller. It inspects the document's AcroForm and
// selects the native field filler when fillable fields exist, falling back
// to the fixed-coordinate overlay for flat/scanned documents.
type Filler struct {
	conf *model.Configuration
}

// NewFiller creates a Filler with relaxed PDF validation, matching the wide
// range of scanned agreement forms in the wild.
func NewFiller() *Filler {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Filler{conf: conf}
}

// Fill renders data onto pdfBytes. Only load/render failures are returned as
// errors; per-field misses are logged and skipped inside the fillers.
func (f *Filler) Fill(ctx context.Context, pdfBytes []byte, data map[string]any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields, err := api.FormFields(bytes.NewReader(pdfBytes), f.conf)
	if err != nil {
		// Documents without an AcroForm are not an error; they take the
		// overlay branch. Anything else means the PDF did not load.
		fields = nil
		if !isNoFormErr(err) {
			return nil, fmt.Errorf("loading PDF form: %w", err)
		}
	}

	values := MapFields(data)
	filler := selectFiller(fields, f.conf)

	out, err := filler.Fill(pdfBytes, values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filler.Name(), err)
	}
	return out, nil
}

// selectFiller picks the fill strategy from the document's capability: any
// fillable field selects the native filler, none selects the overlay.
func selectFiller(fields []form.Field, conf *model.Configuration) FormFiller {
	if len(fields) > 0 {
		return &NativeFieldFiller{fields: fields, conf: conf}
	}
	return &CoordinateOverlayFiller{conf: conf}
}

func isNoFormErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return bytes.Contains([]byte(msg), []byte("no form")) ||
		bytes.Contains([]byte(msg), []byte("No form"))
}
