package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"brokerdoc/internal/domain"
	"brokerdoc/internal/xlsxexport"
)

func TestWriteDocuments(t *testing.T) {
	templateID := uuid.New()
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	docs := []domain.GeneratedDocument{
		{
			ID:         uuid.New(),
			TemplateID: templateID,
			Status:     domain.StatusFinalized,
			Version:    2,
			PDFURL:     "https://brokerdoc-generated-documents.s3.ca-central-1.amazonaws.com/doc.pdf",
			Metadata: domain.Metadata{
				DocumentTitle:    "Offer - 123 Main Street",
				PropertyAddress:  "123 Main Street, Toronto",
				PartiesInvolved:  []string{"John Smith", "Mary Johnson"},
				TransactionValue: 800000,
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
	names := map[string]string{templateID.String(): "Ontario Agreement of Purchase and Sale"}

	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteDocuments(&buf, docs, names))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Generated Documents")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Document Title", rows[0][0])
	assert.Equal(t, "Parties Involved", rows[0][2])
	assert.Equal(t, "Updated At", rows[0][9])

	assert.Equal(t, "Offer - 123 Main Street", rows[1][0])
	assert.Equal(t, "123 Main Street, Toronto", rows[1][1])
	assert.Equal(t, "John Smith; Mary Johnson", rows[1][2])
	assert.Equal(t, "800000", rows[1][3])
	assert.Equal(t, "Ontario Agreement of Purchase and Sale", rows[1][4])
	assert.Equal(t, "finalized", rows[1][5])
	assert.Equal(t, "2", rows[1][6])
	assert.Equal(t, "2026-08-01T12:00:00Z", rows[1][8])
}

func TestWriteDocuments_UnknownTemplateFallsBackToID(t *testing.T) {
	templateID := uuid.New()
	docs := []domain.GeneratedDocument{
		{ID: uuid.New(), TemplateID: templateID, Status: domain.StatusPreview, Version: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteDocuments(&buf, docs, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Generated Documents")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, templateID.String(), rows[1][4])
}

func TestWriteDocuments_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteDocuments(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Generated Documents")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
