package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/givehub/givehub/internal/domain/entity"
	"github.com/givehub/givehub/internal/domain/repository"
)

// PreferencesRepository persists per-account settings in the
// user_preferences table, keyed by user id.
type PreferencesRepository struct {
	q Querier
}

func NewPreferencesRepository(q Querier) *PreferencesRepository {
	return &PreferencesRepository{q: q}
}

func (r *PreferencesRepository) Create(ctx context.Context, p *entity.Preferences) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO user_preferences
			(user_id, notification_email, notification_push,
			 privacy_donation_visible, privacy_volunteer_visible,
			 theme, language, timezone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.UserID, p.NotificationEmail, p.NotificationPush,
		p.PrivacyDonationVisible, p.PrivacyVolunteerVisible,
		p.Theme, p.Language, p.Timezone)

	return err
}

func (r *PreferencesRepository) GetByUserID(ctx context.Context, userID string) (*entity.Preferences, error) {
	p := &entity.Preferences{}

	row := r.q.QueryRow(ctx, `
		SELECT user_id, notification_email, notification_push,
		       privacy_donation_visible, privacy_volunteer_visible,
		       theme, language, timezone
		FROM user_preferences
		WHERE user_id = $1
	`, userID)

	if err := row.Scan(&p.UserID, &p.NotificationEmail, &p.NotificationPush,
		&p.PrivacyDonationVisible, &p.PrivacyVolunteerVisible,
		&p.Theme, &p.Language, &p.Timezone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

var _ repository.PreferencesRepository = (*PreferencesRepository)(nil)
