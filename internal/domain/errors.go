package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserInactive            = errors.New("user is inactive")
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrConversationNotFound    = errors.New("conversation not found")
	ErrTemplateNotFound        = errors.New("template not found")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrUnsupportedFileType     = errors.New("only PDF files are supported")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed            = errors.New("file upload to storage failed")
	ErrMissingFields           = errors.New("missing required request fields")
	ErrInvalidStatusTransition = errors.New("invalid document status transition")
	ErrUpstreamFailure         = errors.New("upstream provider failure")
)
