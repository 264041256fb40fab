package entity

import (
	"time"
)

// Credential binds a login secret to exactly one User. Email is stored
// lower-cased; PasswordHash is a bcrypt digest, never the plaintext.
type Credential struct {
	ID                   string
	UserID               string
	Email                string
	PasswordHash         string
	PasswordResetToken   *string
	PasswordResetExpires *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
