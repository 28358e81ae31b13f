package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
storage:
  database: gallery
`

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, SchemeLocal, cfg.Auth.Scheme)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "auth_token", cfg.Auth.CookieName)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "memory", cfg.Sessions.Store)
	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "localhost", cfg.Storage.Host)
	assert.Equal(t, 5432, cfg.Storage.Port)
}

func TestLoadConfig_RequiresDatabase(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, `{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.database is required")
}

func TestLoadConfig_RequiresPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_RejectsUnknownScheme(t *testing.T) {
	cfg := minimalConfig + `
auth:
  scheme: ldap
`
	_, err := LoadConfig(writeConfigFile(t, cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid auth scheme")
}

func TestLoadConfig_OIDCSchemeRequiresOIDCSection(t *testing.T) {
	cfg := minimalConfig + `
auth:
  scheme: oidc
`
	_, err := LoadConfig(writeConfigFile(t, cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oidc config is required")
}

func TestLoadConfig_ValidOIDCSection(t *testing.T) {
	cfg := minimalConfig + `
auth:
  scheme: oidc
oidc:
  client_id: gallery
  client_secret: secret
  issuer_url: https://auth.example.com
  redirect_url: https://gallery.example.com/api/auth/callback
`
	loaded, err := LoadConfig(writeConfigFile(t, cfg))
	require.NoError(t, err)

	assert.Equal(t, SchemeOIDC, loaded.Auth.Scheme)
	assert.Equal(t, DefaultOIDCConfig.Scopes, loaded.OIDC.Scopes)
}

func TestLoadConfig_RejectsRedisIndexCollision(t *testing.T) {
	cfg := minimalConfig + `
cache:
  type: redis
redis:
  address: localhost:6379
  session_index: 2
  cache_index: 2
`
	_, err := LoadConfig(writeConfigFile(t, cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data collision")
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvAdminUsername, "curator")
	t.Setenv(EnvJWTSecret, "env-secret")
	t.Setenv(EnvStorageHost, "db.internal")

	cfg, err := LoadConfig(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "curator", cfg.Auth.AdminUsername)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "db.internal", cfg.Storage.Host)
}

func TestLoadConfig_UploadsRequireBucket(t *testing.T) {
	cfg := minimalConfig + `
uploads:
  enabled: true
`
	_, err := LoadConfig(writeConfigFile(t, cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uploads.bucket is required")
}

func TestLoadConfig_ReviewRequiresAPIKey(t *testing.T) {
	cfg := minimalConfig + `
review:
  enabled: true
`
	_, err := LoadConfig(writeConfigFile(t, cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review.api_key is required")
}
