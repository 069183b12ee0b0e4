package pdffill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// NativeFieldFiller fills AcroForm fields by name, dispatching on the
// concrete field kind (text/date/checkbox/dropdown).
type NativeFieldFiller struct {
	fields []form.Field
	conf   *model.Configuration
}

func (n *NativeFieldFiller) Name() string { return "native field filler" }

// jsonTextField et al. mirror pdfcpu's form-fill JSON schema; fields are
// matched by name.
type jsonTextField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonCheckBox struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

type jsonComboBox struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonForm struct {
	TextFields []jsonTextField `json:"textfield,omitempty"`
	DateFields []jsonTextField `json:"datefield,omitempty"`
	CheckBoxes []jsonCheckBox  `json:"checkbox,omitempty"`
	ComboBoxes []jsonComboBox  `json:"combobox,omitempty"`
}

type jsonFormGroup struct {
	Forms []jsonForm `json:"forms"`
}

// Fill writes each mapped value into its form field. A value whose target
// field is absent from the document is logged and skipped; the fill never
// aborts on a per-field miss.
func (n *NativeFieldFiller) Fill(pdfBytes []byte, values map[string]FieldValue) ([]byte, error) {
	byName := make(map[string]form.Field, len(n.fields))
	for _, f := range n.fields {
		byName[f.Name] = f
	}

	var spec jsonForm
	filled := 0
	for name, v := range values {
		field, ok := byName[name]
		if !ok {
			log.Printf("pdffill: PDF field %q not found, skipping", name)
			continue
		}

		switch field.Typ {
		case form.FTText:
			spec.TextFields = append(spec.TextFields, jsonTextField{Name: name, Value: v.Text})
		case form.FTDate:
			spec.DateFields = append(spec.DateFields, jsonTextField{Name: name, Value: v.Text})
		case form.FTCheckBox:
			checked := v.Checked
			if !v.IsBool {
				checked = v.Text != ""
			}
			spec.CheckBoxes = append(spec.CheckBoxes, jsonCheckBox{Name: name, Value: checked})
		case form.FTComboBox:
			spec.ComboBoxes = append(spec.ComboBoxes, jsonComboBox{Name: name, Value: v.Text})
		default:
			log.Printf("pdffill: PDF field %q has unsupported kind, skipping", name)
			continue
		}
		filled++
	}

	if filled == 0 {
		// Nothing matched; return the document untouched rather than failing.
		return pdfBytes, nil
	}

	specBytes, err := json.Marshal(jsonFormGroup{Forms: []jsonForm{spec}})
	if err != nil {
		return nil, fmt.Errorf("marshaling form spec: %w", err)
	}

	var buf bytes.Buffer
	if err := api.FillForm(bytes.NewReader(pdfBytes), bytes.NewReader(specBytes), &buf, n.conf); err != nil {
		return nil, fmt.Errorf("filling form: %w", err)
	}
	return buf.Bytes(), nil
}
