package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"brokerdoc/internal/config"
	"brokerdoc/internal/domain"
	"brokerdoc/internal/port"
	"brokerdoc/internal/template"
	"brokerdoc/internal/xlsxexport"
)

// GenerateInput is the DTO for document generation. TemplateID selects a
// template directly (the fill endpoint); when it is nil the TemplateName
// keyword resolves against the active Ontario templates (the chat pipeline).
type GenerateInput struct {
	UserID         uuid.UUID
	ConversationID uuid.UUID
	TemplateID     *uuid.UUID
	TemplateName   string
	DocumentData   map[string]any
	UserInput      string
}

// GenerateOutput is the result of a generation: the persisted document plus
// a public preview URL for the filled PDF.
type GenerateOutput struct {
	Document   *domain.GeneratedDocument `json:"document"`
	PreviewURL string                    `json:"previewUrl"`
}

// DocumentService orchestrates filled-PDF generation and lifecycle.
type DocumentService interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)
	Get(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.GeneratedDocument, error)
	UpdateField(ctx context.Context, userID, docID uuid.UUID, field string, value any) (*GenerateOutput, error)
	Finalize(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error)
	ExportXLSX(ctx context.Context, userID uuid.UUID, w io.Writer) error
}

type documentService struct {
	docRepo        port.GeneratedDocumentRepository
	extractionRepo port.ExtractionRepository
	templateRepo   port.TemplateRepository
	convRepo       port.ConversationRepository
	userRepo       port.UserRepository
	storage        port.ObjectStorage
	filler         port.PDFFiller
	email          port.EmailSender
	cfg            *config.S3Config
	httpClient     *http.Client
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.GeneratedDocumentRepository,
	extractionRepo port.ExtractionRepository,
	templateRepo port.TemplateRepository,
	convRepo port.ConversationRepository,
	userRepo port.UserRepository,
	storage port.ObjectStorage,
	filler port.PDFFiller,
	email port.EmailSender,
	cfg *config.S3Config,
) DocumentService {
	return &documentService{
		docRepo:        docRepo,
		extractionRepo: extractionRepo,
		templateRepo:   templateRepo,
		convRepo:       convRepo,
		userRepo:       userRepo,
		storage:        storage,
		filler:         filler,
		email:          email,
		cfg:            cfg,
		httpClient:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Generate resolves the template, fills its PDF, uploads the artifact and
// records the document. Replays are not deduplicated: every call creates a
// new document and object. If the record insert fails after the upload
// succeeded, the object is deleted to keep storage and database in sync.
func (s *documentService) Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	if _, err := s.convRepo.GetByID(ctx, input.UserID, input.ConversationID); err != nil {
		return nil, err
	}

	var tmpl *domain.DocumentTemplate
	var err error
	if input.TemplateID != nil {
		tmpl, err = s.templateRepo.GetByID(ctx, *input.TemplateID)
	} else {
		tmpl, err = s.templateRepo.GetActiveByTypeRegion(ctx,
			template.ResolveType(input.TemplateName), template.DefaultRegion)
	}
	if err != nil {
		return nil, err
	}

	// The explicit fill endpoint validates strictly; the chat pipeline is
	// lenient and generates with whatever was gathered, recording the gaps in
	// the extraction audit row. Unfilled fields simply do not render.
	validation := template.ValidateDocumentData(tmpl, input.DocumentData)
	if input.TemplateID != nil && len(validation.MissingRequired) > 0 {
		return nil, fmt.Errorf("%w: %s",
			domain.ErrMissingFields, strings.Join(validation.MissingRequired, ", "))
	}

	s.recordExtraction(ctx, input, tmpl, validation.MissingRequired)

	pdfBytes, err := s.fetchTemplatePDF(ctx, tmpl)
	if err != nil {
		return nil, fmt.Errorf("documentService.Generate: %w", err)
	}

	filled, err := s.filler.Fill(ctx, pdfBytes, input.DocumentData)
	if err != nil {
		return nil, fmt.Errorf("documentService.Generate: filling PDF: %w", err)
	}

	docID := uuid.New()
	doc := &domain.GeneratedDocument{
		ID:             docID,
		UserID:         input.UserID,
		ConversationID: input.ConversationID,
		TemplateID:     tmpl.ID,
		DocumentData:   domain.DataMap(input.DocumentData),
		Status:         domain.StatusPreview,
		Version:        1,
		Metadata:       buildMetadata(tmpl, input.DocumentData),
	}

	if err := s.uploadArtifact(ctx, doc, filled); err != nil {
		return nil, err
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, doc.S3Bucket, doc.S3Key); delErr != nil {
			log.Printf("documentService.Generate: cleanup of orphaned object %s failed: %v", doc.S3Key, delErr)
		}
		return nil, fmt.Errorf("documentService.Generate: %w", err)
	}

	return &GenerateOutput{Document: doc, PreviewURL: doc.PDFURL}, nil
}

func (s *documentService) Get(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error) {
	return s.docRepo.GetByID(ctx, userID, docID)
}

func (s *documentService) List(ctx context.Context, userID uuid.UUID) ([]domain.GeneratedDocument, error) {
	return s.docRepo.ListByUser(ctx, userID)
}

// UpdateField merges one field into the document data and regenerates the
// whole PDF: new object, new pdf_url, version bump. The previous artifact is
// left in place; documents are never patched in storage.
func (s *documentService) UpdateField(ctx context.Context, userID, docID uuid.UUID, field string, value any) (*GenerateOutput, error) {
	doc, err := s.docRepo.GetByID(ctx, userID, docID)
	if err != nil {
		return nil, err
	}
	if doc.Status == domain.StatusFinalized {
		return nil, domain.ErrInvalidStatusTransition
	}

	tmpl, err := s.templateRepo.GetByID(ctx, doc.TemplateID)
	if err != nil {
		return nil, err
	}

	if doc.DocumentData == nil {
		doc.DocumentData = domain.DataMap{}
	}
	doc.DocumentData[field] = value

	pdfBytes, err := s.fetchTemplatePDF(ctx, tmpl)
	if err != nil {
		return nil, fmt.Errorf("documentService.UpdateField: %w", err)
	}

	filled, err := s.filler.Fill(ctx, pdfBytes, doc.DocumentData)
	if err != nil {
		return nil, fmt.Errorf("documentService.UpdateField: filling PDF: %w", err)
	}

	doc.Version++
	doc.Metadata = buildMetadata(tmpl, doc.DocumentData)

	if err := s.uploadArtifact(ctx, doc, filled); err != nil {
		return nil, err
	}

	if err := s.docRepo.Update(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, doc.S3Bucket, doc.S3Key); delErr != nil {
			log.Printf("documentService.UpdateField: cleanup of orphaned object %s failed: %v", doc.S3Key, delErr)
		}
		return nil, fmt.Errorf("documentService.UpdateField: %w", err)
	}

	return &GenerateOutput{Document: doc, PreviewURL: doc.PDFURL}, nil
}

// Finalize moves a document from preview to finalized. Finalizing an already
// finalized document is a no-op; any other transition is rejected. A
// notification email is sent best-effort; its failure never fails the call.
func (s *documentService) Finalize(ctx context.Context, userID, docID uuid.UUID) (*domain.GeneratedDocument, error) {
	doc, err := s.docRepo.GetByID(ctx, userID, docID)
	if err != nil {
		return nil, err
	}
	if doc.Status == domain.StatusFinalized {
		return doc, nil
	}
	if !doc.Status.CanTransitionTo(domain.StatusFinalized) {
		return nil, domain.ErrInvalidStatusTransition
	}

	if err := s.docRepo.UpdateStatus(ctx, userID, docID, domain.StatusFinalized); err != nil {
		return nil, err
	}
	doc.Status = domain.StatusFinalized

	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		title := doc.Metadata.DocumentTitle
		if title == "" {
			title = "Generated document"
		}
		if err := s.email.SendDocumentFinalizedEmail(ctx, user.Email, user.FullName, title, doc.PDFURL); err != nil {
			log.Printf("documentService.Finalize: notification email failed: %v", err)
		}
	} else {
		log.Printf("documentService.Finalize: loading user for notification failed: %v", err)
	}

	return doc, nil
}

// ExportXLSX streams an xlsx transaction log of the caller's documents.
func (s *documentService) ExportXLSX(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	docs, err := s.docRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	templateNames := make(map[string]string)
	for i := range docs {
		id := docs[i].TemplateID
		if _, seen := templateNames[id.String()]; seen {
			continue
		}
		tmpl, err := s.templateRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		templateNames[id.String()] = tmpl.Name
	}

	return xlsxexport.WriteDocuments(w, docs, templateNames)
}

// recordExtraction persists the extraction audit row. Failures are logged
// only; the audit trail never blocks generation.
func (s *documentService) recordExtraction(ctx context.Context, input GenerateInput, tmpl *domain.DocumentTemplate, missing []string) {
	fields, err := json.Marshal(input.DocumentData)
	if err != nil {
		log.Printf("documentService.recordExtraction: marshaling fields: %v", err)
		return
	}
	ex := &domain.DocumentExtraction{
		ID:                    uuid.New(),
		ConversationID:        input.ConversationID,
		TemplateID:            tmpl.ID,
		UserInput:             input.UserInput,
		ExtractedFields:       fields,
		MissingRequiredFields: missing,
	}
	if err := s.extractionRepo.Create(ctx, ex); err != nil {
		log.Printf("documentService.recordExtraction: %v", err)
	}
}

// fetchTemplatePDF loads the blank form: from object storage when the
// template URL points at one of our buckets, over HTTP otherwise.
func (s *documentService) fetchTemplatePDF(ctx context.Context, tmpl *domain.DocumentTemplate) ([]byte, error) {
	if bucket, key, ok := s.parseBucketKey(tmpl.PDFFormURL); ok {
		return s.storage.Download(ctx, bucket, key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tmpl.PDFFormURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building template fetch request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching template PDF: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching template PDF: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// parseBucketKey recognizes virtual-hosted S3 URLs for the configured
// buckets, e.g. https://{bucket}.s3.{region}.amazonaws.com/{key}.
func (s *documentService) parseBucketKey(rawURL string) (bucket, key string, ok bool) {
	for _, b := range []string{s.cfg.UploadsBucket, s.cfg.GeneratedBucket} {
		prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", b, s.cfg.Region)
		if strings.HasPrefix(rawURL, prefix) {
			return b, strings.TrimPrefix(rawURL, prefix), true
		}
	}
	return "", "", false
}

func (s *documentService) uploadArtifact(ctx context.Context, doc *domain.GeneratedDocument, filled []byte) error {
	key := fmt.Sprintf("users/%s/generated/%s-v%d.pdf", doc.UserID, doc.ID, doc.Version)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.GeneratedBucket,
		Key:         key,
		Body:        bytes.NewReader(filled),
		ContentType: domain.PDFContentType,
		Size:        int64(len(filled)),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	doc.S3Bucket = s.cfg.GeneratedBucket
	doc.S3Key = key
	doc.PDFURL = s.storage.PublicURL(s.cfg.GeneratedBucket, key)
	return nil
}

// buildMetadata summarizes the document data for listings and export.
func buildMetadata(tmpl *domain.DocumentTemplate, data map[string]any) domain.Metadata {
	meta := domain.Metadata{
		DocumentTitle: tmpl.Name,
	}
	if addr, ok := data["property_address"].(string); ok {
		meta.PropertyAddress = addr
		if addr != "" {
			meta.DocumentTitle = fmt.Sprintf("%s - %s", tmpl.Name, addr)
		}
	}
	if buyer, ok := data["buyer_full_name"].(string); ok && buyer != "" {
		meta.PartiesInvolved = append(meta.PartiesInvolved, buyer)
	}
	if seller, ok := data["seller_full_name"].(string); ok && seller != "" {
		meta.PartiesInvolved = append(meta.PartiesInvolved, seller)
	}
	if price, ok := data["purchase_price"]; ok {
		meta.TransactionValue = coerceNumber(price)
	}
	return meta
}

func coerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		var f float64
		cleaned := strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(n), "$"), ",", "")
		if _, err := fmt.Sscanf(cleaned, "%f", &f); err == nil {
			return f
		}
	}
	return 0
}
