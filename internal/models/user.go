package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           string    `json:"id" db:"id"`                  // Application-generated UUID
	Username     string    `json:"username" db:"username"`      // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`        // Hashed password, never serialized
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`       // Role flag, set at registration only
	CreatedAt    time.Time `json:"-" db:"created_at"`           // Creation timestamp
	UpdatedAt    time.Time `json:"-" db:"updated_at"`           // Last update timestamp
}
