// Package strategy adapts the authentication service to the two modes the
// route-protection layer understands: email/password and bearer token.
// Every service failure collapses to ErrAuthenticationFailed so internal
// error detail never reaches the transport layer.
package strategy

import (
	"context"
	"errors"

	"github.com/givehub/givehub/internal/domain/entity"
	"github.com/givehub/givehub/pkg/helpers"
)

// ErrAuthenticationFailed is the only error either strategy returns.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Authenticator verifies an email/password pair.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}

// TokenValidator confirms the account behind a verified token still exists.
type TokenValidator interface {
	ValidateToken(ctx context.Context, userID string) (*entity.User, error)
}

// Credential authenticates with an email/password pair.
type Credential struct {
	Svc Authenticator
}

func NewCredential(svc Authenticator) *Credential {
	return &Credential{Svc: svc}
}

func (s *Credential) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.Svc.Authenticate(ctx, email, password)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return user, nil
}

// Bearer authenticates with a signed session token: verify signature and
// expiry first, then confirm the referenced account exists.
type Bearer struct {
	JWT *helpers.JWTManager
	Svc TokenValidator
}

func NewBearer(jwt *helpers.JWTManager, svc TokenValidator) *Bearer {
	return &Bearer{JWT: jwt, Svc: svc}
}

func (s *Bearer) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	user, err := s.Svc.ValidateToken(ctx, claims.UserID)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return user, nil
}
