// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// TokenPair collects the two tokens issued on register/login/refresh.
// The refresh token travels only in a cookie, never in a response body.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // access token expiry (for diagnostics)
}

// User represents an account stored on the server.
type User struct {
	ID           uuid.UUID // PK
	Email        string    // unique
	PasswordHash []byte    // bcrypt(password)
	Name         string
	CreatedAt    time.Time
}

// Task is a single user-owned work item.
type Task struct {
	ID        uuid.UUID // PK
	UserID    uuid.UUID // FK -> users.id
	InputText string
	Status    string  // "pending" on creation
	Result    *string // nil until a result is recorded
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaskUpdate carries the mutable task fields; nil means "leave unchanged".
type TaskUpdate struct {
	Status *string
	Result *string
}
