package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	RealName     string    `json:"realname" db:"realname"`     // Display name
	PasswordHash string    `json:"-" db:"password_hash"`       // Salted bcrypt hash
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`     // Grants hotel creation
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
