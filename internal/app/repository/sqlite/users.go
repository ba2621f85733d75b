package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"echoscribe/internal/app/model"
	"echoscribe/internal/app/repository"
)

// UserRepository is the SQLite implementation of repository.UserDAO, used for
// local development.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, hashed_password FROM users WHERE username = ?`

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
	insertSQL := `INSERT INTO users (username, hashed_password) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, insertSQL, username, hashedPassword)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, repository.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	return &model.User{ID: id, Username: username, HashedPassword: hashedPassword}, nil
}
