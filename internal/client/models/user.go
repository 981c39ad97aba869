package models

import "github.com/google/uuid"

// User is the account holder profile.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}
