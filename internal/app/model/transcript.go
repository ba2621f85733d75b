package model

import "time"

// Transcript is a stored transcript record. Content is persisted exactly as
// submitted; CreatedAt is assigned by the database at insert time.
type Transcript struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
