package models

import "time"

// User represents a user row in the users table.
type User struct {
	UserID       string    `db:"user_id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
