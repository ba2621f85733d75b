package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"echoscribe/internal/app/model"
	"echoscribe/internal/app/repository"
)

// TranscriptRepository is the Postgres implementation of repository.TranscriptDAO.
type TranscriptRepository struct {
	db *sql.DB
}

func NewTranscriptRepository(db *sql.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

func (r *TranscriptRepository) Save(ctx context.Context, content string) (*model.Transcript, error) {
	insertSQL := `INSERT INTO transcripts (content) VALUES ($1) RETURNING id, created_at`

	t := model.Transcript{Content: content}
	err := r.db.QueryRowContext(ctx, insertSQL, content).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	return &t, nil
}

func (r *TranscriptRepository) GetByID(ctx context.Context, id int64) (*model.Transcript, error) {
	query := `SELECT id, content, created_at FROM transcripts WHERE id = $1`

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
