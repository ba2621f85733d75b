package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"echoscribe/internal/app/model"
	"echoscribe/internal/app/repository"
)

// UserRepository is the Postgres implementation of repository.UserDAO.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, hashed_password FROM users WHERE username = $1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, username, hashedPassword string) (*model.User, error) {
	insertSQL := `INSERT INTO users (username, hashed_password) VALUES ($1, $2) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, insertSQL, username, hashedPassword).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, repository.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	return &model.User{ID: id, Username: username, HashedPassword: hashedPassword}, nil
}
