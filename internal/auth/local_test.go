package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"art-gallery/internal/config"
	"art-gallery/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalScheme(t *testing.T) *LocalScheme {
	t.Helper()

	digest, err := HashPassword("correct-horse")
	require.NoError(t, err)

	cfg := config.DefaultAuthConfig
	cfg.AdminUsername = "admin"
	cfg.AdminPasswordDigest = digest
	cfg.JWTSecret = "test-secret-material"
	cfg.TokenLifetime = time.Hour

	return NewLocalScheme(cfg, slog.Default())
}

func TestLocalScheme_IssueAndVerify(t *testing.T) {
	scheme := newTestLocalScheme(t)
	ctx := context.Background()

	token, claims, err := scheme.Issue(ctx, "admin", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, claims)

	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))

	verified, err := scheme.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, claims.Subject, verified.Subject)
	assert.Equal(t, claims.Role, verified.Role)
}

func TestLocalScheme_IssueRejectsBadCredentials(t *testing.T) {
	scheme := newTestLocalScheme(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "correct-horse"},
		{"empty username", "", "correct-horse"},
		{"empty password", "admin", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, claims, err := scheme.Issue(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, token)
			assert.Nil(t, claims)
		})
	}
}

func TestLocalScheme_VerifyRejectsExpiredToken(t *testing.T) {
	scheme := newTestLocalScheme(t)
	ctx := context.Background()

	issuedAt := time.Now()
	scheme.now = func() time.Time { return issuedAt }

	token, _, err := scheme.Issue(ctx, "admin", "correct-horse")
	require.NoError(t, err)

	// Just before expiry the token is still good.
	scheme.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }
	_, err = scheme.Verify(ctx, token)
	require.NoError(t, err)

	scheme.now = func() time.Time { return issuedAt.Add(time.Hour + time.Second) }
	_, err = scheme.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalScheme_VerifyRejectsWrongSecret(t *testing.T) {
	scheme := newTestLocalScheme(t)
	ctx := context.Background()

	token, _, err := scheme.Issue(ctx, "admin", "correct-horse")
	require.NoError(t, err)

	other := newTestLocalScheme(t)
	other.cfg.JWTSecret = "a-different-secret"

	_, err = other.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalScheme_VerifyRejectsMalformedTokens(t *testing.T) {
	scheme := newTestLocalScheme(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scheme.Verify(ctx, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
