package model

// User represents a service account. The plaintext password is never stored;
// HashedPassword holds a bcrypt hash.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
}
