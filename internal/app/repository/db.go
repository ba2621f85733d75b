package repository

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the datastore named by databaseURL. URLs with a
// postgres:// or postgresql:// scheme use the Postgres driver; anything else
// is treated as a SQLite file path for development.
func Open(databaseURL string) (*sql.DB, string, error) {
	driver := "sqlite3"
	dsn := databaseURL
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		driver = "postgres"
	} else {
		dsn = fmt.Sprintf("file:%s?cache=shared&mode=rwc", databaseURL)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	return db, driver, nil
}
