package services

import (
	"context"
	"mime/multipart"

	"echoscribe/internal/app/model"
)

// AuthService issues and validates bearer tokens.
type AuthService interface {
	// IssueToken verifies the username/password pair and mints a signed,
	// time-limited access token.
	IssueToken(ctx context.Context, username, password string) (string, error)

	// Authenticate verifies a token and resolves its subject to a stored
	// user. A cryptographically valid token whose subject no longer exists
	// is rejected.
	Authenticate(ctx context.Context, token string) (*model.User, error)

	// CreateUser provisions a new account with a bcrypt-hashed password.
	CreateUser(ctx context.Context, username, password string) (*model.User, error)
}

// TranscriptionService normalizes an uploaded audio file and relays it to the
// external speech-to-text API.
type TranscriptionService interface {
	Transcribe(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
}

// TranscriptService persists transcript text.
type TranscriptService interface {
	Save(ctx context.Context, content string) (*model.Transcript, error)
}

// StorageService archives original uploads to object storage. Optional; the
// transcription service tolerates a nil implementation.
type StorageService interface {
	ArchiveUpload(ctx context.Context, path, originalName string) (string, error)
}
