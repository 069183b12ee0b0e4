package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FieldList is a jsonb-backed slice of template fields.
type FieldList []TemplateField

// StringList is a jsonb-backed slice of strings.
type StringList []string

// DataMap is a jsonb-backed map of semantic field name to value.
type DataMap map[string]any

// Metadata is the jsonb-backed document summary.
type Metadata DocumentMetadata

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

func (f *FieldList) Scan(src any) error  { return scanJSON(src, f) }
func (s *StringList) Scan(src any) error { return scanJSON(src, s) }
func (m *DataMap) Scan(src any) error    { return scanJSON(src, m) }
func (m *Metadata) Scan(src any) error   { return scanJSON(src, m) }

func (f FieldList) Value() (driver.Value, error)  { return json.Marshal(f) }
func (s StringList) Value() (driver.Value, error) { return json.Marshal(s) }
func (m DataMap) Value() (driver.Value, error)    { return json.Marshal(m) }
func (m Metadata) Value() (driver.Value, error)   { return json.Marshal(m) }
