package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"echoscribe/internal/app/model"
	"echoscribe/internal/app/repository"
)

// TranscriptRepository is the SQLite implementation of repository.TranscriptDAO.
type TranscriptRepository struct {
	db *sql.DB
}

func NewTranscriptRepository(db *sql.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

func (r *TranscriptRepository) Save(ctx context.Context, content string) (*model.Transcript, error) {
	insertSQL := `INSERT INTO transcripts (content) VALUES (?)`

	res, err := r.db.ExecContext(ctx, insertSQL, content)
	if err != nil {
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *TranscriptRepository) GetByID(ctx context.Context, id int64) (*model.Transcript, error) {
	query := `SELECT id, content, created_at FROM transcripts WHERE id = ?`

	var t model.Transcript
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Content, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return &t, nil
}
