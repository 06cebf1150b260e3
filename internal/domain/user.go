package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the clinical records API.
// The plaintext password only exists transiently during registration;
// it is never persisted and never serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // plaintext, set only during registration
	HashedPassword string    `json:"-"` // never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with the given credentials and a fresh ID.
// The caller is responsible for validating the fields and hashing the
// password before the user is stored.
func NewUser(username, email, password string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
