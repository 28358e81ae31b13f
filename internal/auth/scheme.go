// Package auth implements session-token authentication for the gallery
// admin. A single Scheme is selected from configuration at startup; the
// route guard and handlers are scheme-agnostic.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"art-gallery/internal/config"
	"art-gallery/internal/models"
)

var (
	// ErrInvalidCredentials is returned by Issue when the username/password
	// pair does not match the configured admin credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned by Verify for every verification failure:
	// bad signature, malformed token, expiry in the past. Callers must not
	// distinguish the causes; the specific reason is logged, never surfaced.
	ErrInvalidToken = errors.New("invalid token")

	// ErrDelegatedLogin is returned by Issue when the active scheme does not
	// issue tokens itself and login must go through the identity provider.
	ErrDelegatedLogin = errors.New("login is delegated to the identity provider")

	// ErrNoSessionCookie is returned when a request carries no session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")
)

//go:generate mockgen -source=scheme.go -destination=../mocks/scheme.go -package=mocks

// Scheme issues and verifies session tokens. Verify is a pure function of
// (token, current time, key material) and has no side effects; cookie
// handling is the caller's job.
type Scheme interface {
	Name() string
	Issue(ctx context.Context, username, password string) (string, *models.Claims, error)
	Verify(ctx context.Context, token string) (*models.Claims, error)
	Lifetime() time.Duration
}

// NewScheme builds the configured authentication scheme.
func NewScheme(ctx context.Context, cfg *config.Config, flow *FlowSessionManager, logger *slog.Logger) (Scheme, error) {
	switch cfg.Auth.Scheme {
	case config.SchemeLocal:
		return NewLocalScheme(cfg.Auth, logger), nil
	case config.SchemeOIDC:
		return NewOIDCScheme(ctx, cfg, flow, logger)
	default:
		return nil, fmt.Errorf("unsupported auth scheme: %s", cfg.Auth.Scheme)
	}
}
