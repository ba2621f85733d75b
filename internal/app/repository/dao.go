package repository

import (
	"context"
	"errors"

	"echoscribe/internal/app/model"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateUsername is returned when creating a user whose username is
// already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// UserDAO provides access to stored user accounts.
type UserDAO interface {
	// GetByUsername returns the user with the given username, or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Create inserts a new user with a pre-hashed password. Returns
	// ErrDuplicateUsername if the username is taken.
	Create(ctx context.Context, username, hashedPassword string) (*model.User, error)
}

// TranscriptDAO provides access to stored transcripts.
type TranscriptDAO interface {
	// Save inserts the content verbatim and returns the stored record with
	// its database-assigned id and creation timestamp.
	Save(ctx context.Context, content string) (*model.Transcript, error)

	// GetByID returns the transcript with the given id, or ErrNotFound.
	// Not exposed over HTTP; exists for the write/read round-trip invariant.
	GetByID(ctx context.Context, id int64) (*model.Transcript, error)
}
