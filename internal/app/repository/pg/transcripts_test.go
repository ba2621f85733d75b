package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echoscribe/internal/app/repository"
)

// TestTranscriptRepository_Interface verifies TranscriptRepository implements TranscriptDAO
func TestTranscriptRepository_Interface(t *testing.T) {
	var _ repository.TranscriptDAO = (*TranscriptRepository)(nil)
}

func TestTranscriptRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranscriptRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transcripts (content) VALUES ($1) RETURNING id, created_at`)).
		WithArgs("hello world").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))

	transcript, err := repo.Save(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, int64(42), transcript.ID)
	assert.Equal(t, "hello world", transcript.Content)
	assert.Equal(t, now, transcript.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptRepository_Save_EmptyContent(t *testing.T) {
	// Empty content is legal and stored verbatim.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranscriptRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transcripts (content) VALUES ($1) RETURNING id, created_at`)).
		WithArgs("").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	transcript, err := repo.Save(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", transcript.Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptRepository_Save_WriteFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranscriptRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transcripts (content) VALUES ($1) RETURNING id, created_at`)).
		WithArgs("hello world").
		WillReturnError(errors.New("disk full"))

	_, err = repo.Save(context.Background(), "hello world")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranscriptRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, content, created_at FROM transcripts WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "created_at"}).AddRow(42, "hello world", now))

	transcript, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "hello world", transcript.Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTranscriptRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, content, created_at FROM transcripts WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "created_at"}))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
