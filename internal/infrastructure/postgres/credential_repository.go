package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/givehub/givehub/internal/domain/entity"
	"github.com/givehub/givehub/internal/domain/repository"
)

// CredentialRepository persists login secrets in the user_credentials
// table. Emails arrive already lower-cased; the table enforces uniqueness
// so concurrent registrations racing past the service pre-check are
// serialized here.
type CredentialRepository struct {
	q Querier
}

func NewCredentialRepository(q Querier) *CredentialRepository {
	return &CredentialRepository{q: q}
}

func (r *CredentialRepository) Create(ctx context.Context, c *entity.Credential) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO user_credentials (id, user_id, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, c.ID, c.UserID, c.Email, c.PasswordHash)

	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	c := &entity.Credential{}

	row := r.q.QueryRow(ctx, `
		SELECT id, user_id, email, password_hash,
		       password_reset_token, password_reset_expires,
		       created_at, updated_at
		FROM user_credentials
		WHERE email = $1
	`, email)

	if err := row.Scan(&c.ID, &c.UserID, &c.Email, &c.PasswordHash,
		&c.PasswordResetToken, &c.PasswordResetExpires,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

var _ repository.CredentialRepository = (*CredentialRepository)(nil)
