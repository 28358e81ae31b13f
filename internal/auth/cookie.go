package auth

import (
	"errors"
	"net/http"
	"time"

	"art-gallery/internal/config"
)

// CookieManager writes and clears the session cookie. The cookie is
// http-only and same-site strict in every scheme; max-age always matches the
// token lifetime.
type CookieManager struct {
	name     string
	secure   bool
	lifetime time.Duration
}

func NewCookieManager(cfg config.AuthConfig) *CookieManager {
	return &CookieManager{
		name:     cfg.CookieName,
		secure:   cfg.SecureCookies,
		lifetime: cfg.TokenLifetime,
	}
}

func (m *CookieManager) Name() string {
	return m.name
}

// Set writes the session cookie carrying the given token.
func (m *CookieManager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.lifetime.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires the session cookie immediately. Clearing an absent cookie is
// a no-op from the client's perspective.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read returns the session token carried by the request, or
// ErrNoSessionCookie when the cookie is absent or empty.
func (m *CookieManager) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(m.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoSessionCookie
		}
		return "", err
	}

	if cookie.Value == "" {
		return "", ErrNoSessionCookie
	}

	return cookie.Value, nil
}
