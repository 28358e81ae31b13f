package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"art-gallery/internal/config"
	"art-gallery/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the wire shape of the local scheme's session token.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// LocalScheme signs HS256 session tokens for the single configured admin
// account. Tokens are immutable once issued and are never refreshed.
type LocalScheme struct {
	cfg    config.AuthConfig
	logger *slog.Logger

	// now is swappable so expiry behaviour can be tested without sleeping.
	now func() time.Time
}

func NewLocalScheme(cfg config.AuthConfig, logger *slog.Logger) *LocalScheme {
	return &LocalScheme{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

func (s *LocalScheme) Name() string {
	return config.SchemeLocal
}

func (s *LocalScheme) Lifetime() time.Duration {
	return s.cfg.TokenLifetime
}

// Issue verifies the credentials and signs a session token carrying
// {sub, role, iat, exp}. A credential mismatch returns ErrInvalidCredentials;
// signing failures are returned unwrapped so callers answer 500, not 401.
func (s *LocalScheme) Issue(ctx context.Context, username, password string) (string, *models.Claims, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1

	passwordMatch, err := VerifyPassword(password, s.cfg.AdminPasswordDigest)
	if err != nil {
		return "", nil, fmt.Errorf("failed to verify password digest: %w", err)
	}

	if !usernameMatch || !passwordMatch {
		return "", nil, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.TokenLifetime)

	claims := sessionClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.cfg.AdminUsername,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, &models.Claims{
		Subject:   s.cfg.AdminUsername,
		Role:      models.RoleAdmin,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify validates signature and expiry against the configured secret.
// Every failure collapses to ErrInvalidToken; the cause stays in the error
// chain for logging only.
func (s *LocalScheme) Verify(ctx context.Context, token string) (*models.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" || claims.Role == "" {
		return nil, fmt.Errorf("%w: missing subject or role claim", ErrInvalidToken)
	}

	decoded := &models.Claims{
		Subject: claims.Subject,
		Role:    claims.Role,
	}

	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}

	return decoded, nil
}
