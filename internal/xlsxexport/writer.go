package xlsxexport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"brokerdoc/internal/domain"
)

const sheetName = "Generated Documents"

// columns defines the export header row.
var columns = []string{
	"Document Title",
	"Property Address",
	"Parties Involved",
	"Transaction Value",
	"Template",
	"Status",
	"Version",
	"PDF URL",
	"Created At",
	"Updated At",
}

// WriteDocuments renders a transaction log of generated documents as an
// xlsx workbook. Template names are resolved through the supplied map;
// unknown template IDs fall back to the raw UUID.
func WriteDocuments(w io.Writer, docs []domain.GeneratedDocument, templateNames map[string]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsxexport: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("xlsxexport: header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("xlsxexport: write header: %w", err)
		}
	}

	for i := range docs {
		row := documentToRow(&docs[i], templateNames)
		for col, val := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("xlsxexport: data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return fmt.Errorf("xlsxexport: write row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}

func documentToRow(doc *domain.GeneratedDocument, templateNames map[string]string) []any {
	templateName := templateNames[doc.TemplateID.String()]
	if templateName == "" {
		templateName = doc.TemplateID.String()
	}

	return []any{
		doc.Metadata.DocumentTitle,
		doc.Metadata.PropertyAddress,
		strings.Join(doc.Metadata.PartiesInvolved, "; "),
		doc.Metadata.TransactionValue,
		templateName,
		string(doc.Status),
		doc.Version,
		doc.PDFURL,
		doc.CreatedAt.Format(time.RFC3339),
		doc.UpdatedAt.Format(time.RFC3339),
	}
}
