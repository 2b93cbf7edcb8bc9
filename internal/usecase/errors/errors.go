package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrUserNotActive      = errors.New("user is not active")
)

// Pipeline errors
var (
	ErrInvalidVideoURL          = errors.New("invalid YouTube URL")
	ErrNoTranscript             = errors.New("no audio/transcript available")
	ErrTranscriptionFailed      = errors.New("transcription failed")
	ErrGenerationFailed         = errors.New("article generation failed")
	ErrTranscriberNotConfigured = errors.New("transcription service not configured")
	ErrGeneratorNotConfigured   = errors.New("generation service not configured")
)

// Article errors
var (
	ErrBlogNotFound         = errors.New("blog article not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrStorageNotConfigured = errors.New("object storage not configured")
	ErrExportFailed         = errors.New("article export failed")
)
