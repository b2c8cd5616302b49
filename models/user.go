package models

import "time"

// User is a clinician account used for authentication against the central
// server. The sync engine itself only ever sees the resulting bearer
// token; User exists for the register/login endpoints.
type User struct {
	// UserID is the internal unique identifier of the account. Persistence
	// layer only, never serialized.
	UserID int64 `json:"-"`

	// Login is the unique login identifier, typically the clinician's
	// work email.
	Login string `json:"login"`

	// Name is the display name shown in the client UI.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests
	// only; it is stored server-side as a bcrypt hash and never echoed back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored bcrypt digest. Persistence layer only.
	PasswordHash string `json:"-"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table for accounts.
func (u User) TableName() string {
	return "users"
}
