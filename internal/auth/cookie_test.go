package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"art-gallery/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCookieManager() *CookieManager {
	cfg := config.DefaultAuthConfig
	cfg.TokenLifetime = time.Hour
	return NewCookieManager(cfg)
}

func TestCookieManager_SetAttributes(t *testing.T) {
	m := newTestCookieManager()

	rr := httptest.NewRecorder()
	m.Set(rr, "token-value")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, "auth_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestCookieManager_ClearExpiresCookie(t *testing.T) {
	m := newTestCookieManager()

	rr := httptest.NewRecorder()
	m.Clear(rr)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, "auth_token", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
}

func TestCookieManager_Read(t *testing.T) {
	m := newTestCookieManager()

	t.Run("present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: "token-value"})

		token, err := m.Read(req)
		require.NoError(t, err)
		assert.Equal(t, "token-value", token)
	})

	t.Run("absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		_, err := m.Read(req)
		assert.ErrorIs(t, err, ErrNoSessionCookie)
	})

	t.Run("empty value", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: ""})

		_, err := m.Read(req)
		assert.ErrorIs(t, err, ErrNoSessionCookie)
	})
}
