package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"brokerdoc/internal/config"
	"brokerdoc/internal/domain"
	"brokerdoc/internal/port"
)

// UploadInput is the DTO for document upload requests.
type UploadInput struct {
	UserID         uuid.UUID
	ConversationID uuid.UUID
	File           multipart.File
	Header         *multipart.FileHeader
}

// UploadService manages user-uploaded source PDFs.
type UploadService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.UploadedDocument, error)
	Get(ctx context.Context, userID, docID uuid.UUID) (*domain.UploadedDocument, error)
	ListByConversation(ctx context.Context, userID, convID uuid.UUID) ([]domain.UploadedDocument, error)
	GetDownloadURL(ctx context.Context, userID, docID uuid.UUID) (string, error)
}

type uploadService struct {
	uploadRepo port.UploadRepository
	convRepo   port.ConversationRepository
	storage    port.ObjectStorage
	cfg        *config.S3Config
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(
	uploadRepo port.UploadRepository,
	convRepo port.ConversationRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) UploadService {
	return &uploadService{
		uploadRepo: uploadRepo,
		convRepo:   convRepo,
		storage:    storage,
		cfg:        cfg,
	}
}

// Upload validates and stores a PDF attachment. Only PDFs up to the
// configured size limit are accepted; both checks run before any byte
// reaches object storage. If the metadata insert fails after the object
// was written, the object is deleted so storage and database stay in sync.
func (s *uploadService) Upload(ctx context.Context, input UploadInput) (*domain.UploadedDocument, error) {
	if _, err := s.convRepo.GetByID(ctx, input.UserID, input.ConversationID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(input.Header.Filename))
	if ext != ".pdf" {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte check. A real PDF starts with "%PDF-".
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if http.DetectContentType(buf[:n]) != domain.PDFContentType {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	docID := uuid.New()
	s3Key := fmt.Sprintf("users/%s/%s/%d.pdf",
		input.UserID, input.ConversationID, time.Now().UnixMilli())

	log.Printf("uploadService.Upload: uploading %s (%d bytes) for user %s conversation %s",
		input.Header.Filename, input.Header.Size, input.UserID, input.ConversationID)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.UploadsBucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: domain.PDFContentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("uploadService.Upload: storage upload failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	doc := &domain.UploadedDocument{
		ID:             docID,
		UserID:         input.UserID,
		ConversationID: input.ConversationID,
		Name:           input.Header.Filename,
		ContentType:    domain.PDFContentType,
		FileSize:       input.Header.Size,
		S3Bucket:       s.cfg.UploadsBucket,
		S3Key:          s3Key,
		FileURL:        s.storage.PublicURL(s.cfg.UploadsBucket, s3Key),
	}

	if err := s.uploadRepo.Create(ctx, doc); err != nil {
		// Compensate: remove the orphaned object.
		if delErr := s.storage.Delete(ctx, s.cfg.UploadsBucket, s3Key); delErr != nil {
			log.Printf("uploadService.Upload: cleanup of orphaned object %s failed: %v", s3Key, delErr)
		}
		return nil, fmt.Errorf("uploadService.Upload: %w", err)
	}

	return doc, nil
}

func (s *uploadService) Get(ctx context.Context, userID, docID uuid.UUID) (*domain.UploadedDocument, error) {
	return s.uploadRepo.GetByID(ctx, userID, docID)
}

func (s *uploadService) ListByConversation(ctx context.Context, userID, convID uuid.UUID) ([]domain.UploadedDocument, error) {
	if _, err := s.convRepo.GetByID(ctx, userID, convID); err != nil {
		return nil, err
	}
	return s.uploadRepo.ListByConversation(ctx, userID, convID)
}

func (s *uploadService) GetDownloadURL(ctx context.Context, userID, docID uuid.UUID) (string, error) {
	doc, err := s.uploadRepo.GetByID(ctx, userID, docID)
	if err != nil {
		return "", err
	}
	url, err := s.storage.GetPresignedURL(ctx, doc.S3Bucket, doc.S3Key, s.cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("uploadService.GetDownloadURL: %w", err)
	}
	return url, nil
}
