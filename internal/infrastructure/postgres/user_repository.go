package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/givehub/givehub/internal/domain/entity"
	"github.com/givehub/givehub/internal/domain/repository"
)

// UserRepository persists accounts in the users table. Soft-deleted rows
// are invisible to every read.
type UserRepository struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepository {
	return &UserRepository{q: q}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO users (id, name, points)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, u.ID, u.Name, u.Points)

	return row.Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}

	row := r.q.QueryRow(ctx, `
		SELECT id, name, profile_picture_url, personal_statement, points,
		       created_at, updated_at, last_login
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`, id)

	if err := row.Scan(&u.ID, &u.Name, &u.ProfilePictureURL, &u.PersonalStatement,
		&u.Points, &u.CreatedAt, &u.UpdatedAt, &u.LastLogin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	res, err := r.q.Exec(ctx, `
		UPDATE users
		SET last_login = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
