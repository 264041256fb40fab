package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/givehub/givehub/internal/domain/entity"
	"github.com/givehub/givehub/internal/domain/repository"
	"github.com/givehub/givehub/pkg/helpers"
	"github.com/givehub/givehub/pkg/mailer"
)

var (
	// ErrDuplicateCredential means the email is already registered.
	ErrDuplicateCredential = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotFound means the id refers to no existing account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrStoreUnavailable wraps persistence failures; the raw driver error
	// never crosses the service boundary.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// LoginResult is returned by Register and Login.
type LoginResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// Service orchestrates the account, credential, and preferences stores
// together with the password hasher and token issuer. It holds no mutable
// state of its own; every call re-reads from the store.
type Service struct {
	Store  repository.Store
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
	Pub    *helpers.RabbitPublisher
}

func NewService(store repository.Store, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher) *Service {
	return &Service{Store: store, JWT: jwt, Redis: rdb, Logger: logger, Pub: pub}
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// Register creates the account, credential, and default preferences in one
// transaction, then issues a session token. A duplicate email aborts
// before any write; a storage-level unique violation from a racing
// registration maps to the same ErrDuplicateCredential.
func (s *Service) Register(ctx context.Context, email, password, name string) (*LoginResult, error) {
	email = helpers.NormalizeEmail(email)

	var user *entity.User
	err := s.Store.WithTx(ctx, func(tx repository.Store) error {
		_, err := tx.Credentials().GetByEmail(ctx, email)
		if err == nil {
			return ErrDuplicateCredential
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		user = &entity.User{ID: uuid.NewString(), Name: name, Points: 0}
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}

		hash, err := helpers.HashPassword(password)
		if err != nil {
			return err
		}
		cred := &entity.Credential{
			ID:           uuid.NewString(),
			UserID:       user.ID,
			Email:        email,
			PasswordHash: hash,
		}
		if err := tx.Credentials().Create(ctx, cred); err != nil {
			return err
		}

		return tx.Preferences().Create(ctx, entity.DefaultPreferences(user.ID))
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateCredential), errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrDuplicateCredential
		default:
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("email", email).Error("register transaction failed")
			}
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	res, err := s.issueToken(ctx, user, email)
	if err != nil {
		return nil, err
	}

	s.enqueueWelcomeEmail(ctx, email, name)
	return res, nil
}

// Authenticate verifies email/password and returns the account. Unknown
// email and wrong password produce the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	email = helpers.NormalizeEmail(email)

	cred, err := s.Store.Credentials().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !helpers.CompareHashAndPassword(cred.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetByID(ctx, cred.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// credential without a live account (soft-deleted)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// Best-effort telemetry; verification already succeeded.
	now := time.Now()
	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", user.ID).Warn("last login update failed")
		}
	} else {
		user.LastLogin = &now
	}

	return user, nil
}

// Login verifies credentials and issues a fresh session token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.issueToken(ctx, user, helpers.NormalizeEmail(email))
}

// ValidateToken confirms the account referenced by a verified token still
// exists. Signature and expiry checks belong to the token verifier, which
// the bearer strategy runs before calling this.
func (s *Service) ValidateToken(ctx context.Context, userID string) (*entity.User, error) {
	return s.FindUserByID(ctx, userID)
}

// FindUserByID returns the account with the given id, excluding
// soft-deleted accounts.
func (s *Service) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return user, nil
}

// GenerateToken produces a session token for an already-authenticated
// account.
func (s *Service) GenerateToken(user *entity.User, email string) (string, time.Time, error) {
	return s.JWT.Generate(user.ID, email)
}

func (s *Service) issueToken(ctx context.Context, user *entity.User, email string) (*LoginResult, error) {
	token, exp, err := s.JWT.Generate(user.ID, email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", user.ID).Error("generate token failed")
		}
		return nil, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":   user.ID,
			"email":     email,
			"name":      user.Name,
			"logged_in": true,
		}
		key := sessionKey(user.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, s.JWT.TTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return &LoginResult{User: user, Token: token, ExpiresAt: exp}, nil
}

func (s *Service) enqueueWelcomeEmail(ctx context.Context, email, name string) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: email, Template: "welcome", Data: map[string]any{"Name": name}}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("enqueue welcome email failed")
	}
}
