package repository

import (
	"context"
	"errors"

	"github.com/givehub/givehub/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a record does not exist (or is soft-deleted).
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a credential insert hits the unique
	// constraint on the normalized email.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository persists account records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

// CredentialRepository persists login secrets, one per account.
type CredentialRepository interface {
	Create(ctx context.Context, c *entity.Credential) error
	GetByEmail(ctx context.Context, email string) (*entity.Credential, error)
}

// PreferencesRepository persists per-account settings.
type PreferencesRepository interface {
	Create(ctx context.Context, p *entity.Preferences) error
	GetByUserID(ctx context.Context, userID string) (*entity.Preferences, error)
}

// Store aggregates the three repositories over a shared connection. WithTx
// runs fn against a transaction-scoped Store: every repository call inside
// fn sees the same transaction, which commits only if fn returns nil.
type Store interface {
	Users() UserRepository
	Credentials() CredentialRepository
	Preferences() PreferencesRepository
	WithTx(ctx context.Context, fn func(Store) error) error
}
