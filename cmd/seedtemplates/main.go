package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/template"
)

// Emits db/seeds/templates.sql from the compiled-in template definitions so
// the seed stays in lockstep with the registry.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outPath := "db/seeds/templates.sql"

	templates := []domain.DocumentTemplate{
		template.OntarioPurchaseAgreement(),
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Document template seed data generated from the template registry.",
		"-- Run: make seed-templates",
		"BEGIN;",
		"",
	} {
		if err := w(line); err != nil {
			return err
		}
	}

	for _, tmpl := range templates {
		required, err := json.Marshal(tmpl.RequiredFields)
		if err != nil {
			return fmt.Errorf("marshal required fields: %w", err)
		}
		optional, err := json.Marshal(tmpl.OptionalFields)
		if err != nil {
			return fmt.Errorf("marshal optional fields: %w", err)
		}

		stmt := fmt.Sprintf(`INSERT INTO document_templates
  (id, name, type, region, version, description, pdf_form_url, required_fields, optional_fields, is_active, created_at, updated_at)
VALUES
  ('%s', %s, '%s', '%s', '%s', %s, %s, %s, %s, %t, now(), now())
ON CONFLICT (type, region, version) DO NOTHING;`,
			uuid.New(), quote(tmpl.Name), tmpl.Type, tmpl.Region, tmpl.Version,
			quote(tmpl.Description), quote(tmpl.PDFFormURL),
			quote(string(required))+"::jsonb", quote(string(optional))+"::jsonb",
			tmpl.IsActive)

		if err := w(stmt); err != nil {
			return err
		}
		if err := w(""); err != nil {
			return err
		}
	}

	if err := w("COMMIT;"); err != nil {
		return err
	}

	log.Printf("wrote %d templates to %s", len(templates), outPath)
	return nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
