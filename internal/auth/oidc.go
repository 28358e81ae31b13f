package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"art-gallery/internal/config"
	"art-gallery/internal/models"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OIDCScheme verifies identity-provider ID tokens carried in the session
// cookie. It never issues tokens itself: login runs through the
// authorization-code flow (StartLogin/HandleCallback) and the callback
// deposits the provider's raw ID token into the cookie.
type OIDCScheme struct {
	cfg          config.AuthConfig
	provider     *oidc.Provider
	verifier     *oidc.IDTokenVerifier
	oauth2Config *oauth2.Config
	flow         *FlowSessionManager
	logger       *slog.Logger
}

func NewOIDCScheme(ctx context.Context, cfg *config.Config, flow *FlowSessionManager, logger *slog.Logger) (*OIDCScheme, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDC.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.OIDC.ClientID,
		ClientSecret: cfg.OIDC.ClientSecret,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.OIDC.Scopes,
		RedirectURL:  cfg.OIDC.RedirectURI,
	}

	return &OIDCScheme{
		cfg:          cfg.Auth,
		provider:     provider,
		verifier:     provider.Verifier(&oidc.Config{ClientID: cfg.OIDC.ClientID}),
		oauth2Config: oauth2Config,
		flow:         flow,
		logger:       logger,
	}, nil
}

func (s *OIDCScheme) Name() string {
	return config.SchemeOIDC
}

func (s *OIDCScheme) Lifetime() time.Duration {
	return s.cfg.TokenLifetime
}

// Issue always fails: credentials are owned by the identity provider.
func (s *OIDCScheme) Issue(ctx context.Context, username, password string) (string, *models.Claims, error) {
	return "", nil, ErrDelegatedLogin
}

// Verify validates the raw ID token against the provider's signing keys and
// maps its claims onto the session claims shape. Membership in the
// configured admin group grants the admin role.
func (s *OIDCScheme) Verify(ctx context.Context, token string) (*models.Claims, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	idToken, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var idClaims struct {
		Username string   `json:"preferred_username"`
		Email    string   `json:"email"`
		Groups   []string `json:"groups"`
	}

	if err := idToken.Claims(&idClaims); err != nil {
		return nil, fmt.Errorf("%w: failed to extract claims: %v", ErrInvalidToken, err)
	}

	role := "user"
	for _, group := range idClaims.Groups {
		if group == s.cfg.AdminGroup {
			role = models.RoleAdmin
			break
		}
	}

	return &models.Claims{
		Subject:   idToken.Subject,
		Role:      role,
		IssuedAt:  idToken.IssuedAt,
		ExpiresAt: idToken.Expiry,
	}, nil
}

func (s *OIDCScheme) generateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.URLEncoding.EncodeToString(b)
}

func (s *OIDCScheme) generateCodeVerifier() (string, string) {
	b := make([]byte, 56)
	_, _ = rand.Read(b)

	codeVerifier := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b)
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(hash[:])
	return codeVerifier, codeChallenge
}

// StartLogin stores fresh state, nonce and PKCE verifier in the flow session
// and returns the provider authorization URL. ctx must carry a loaded flow
// session.
func (s *OIDCScheme) StartLogin(ctx context.Context) (string, error) {
	state := s.generateRandString(32)
	nonce := s.generateRandString(32)
	codeVerifier, codeChallenge := s.generateCodeVerifier()

	s.flow.SetOauthState(ctx, state)
	s.flow.SetOauthNonce(ctx, nonce)
	s.flow.SetOauthCodeVerifier(ctx, codeVerifier)

	authURL := s.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return authURL, nil
}

// HandleCallback finishes the authorization-code flow: state check, code
// exchange, ID token verification, nonce check. On success it returns the
// raw ID token (to be placed in the session cookie) and the decoded claims.
func (s *OIDCScheme) HandleCallback(ctx context.Context, r *http.Request) (string, *models.Claims, error) {
	if errorParam := r.URL.Query().Get("error"); errorParam != "" {
		errorDescription := r.URL.Query().Get("error_description")
		return "", nil, fmt.Errorf("%w: provider error %q: %s", ErrInvalidToken, errorParam, errorDescription)
	}

	storedState := s.flow.GetOauthState(ctx)
	if storedState == "" {
		return "", nil, fmt.Errorf("%w: no oauth state found in flow session", ErrInvalidToken)
	}

	if received := r.URL.Query().Get("state"); received != storedState {
		return "", nil, fmt.Errorf("%w: state parameter mismatch", ErrInvalidToken)
	}

	s.flow.ClearOauthState(ctx)

	code := r.URL.Query().Get("code")
	if code == "" {
		return "", nil, fmt.Errorf("%w: no authorization code received", ErrInvalidToken)
	}

	codeVerifier := s.flow.GetOauthCodeVerifier(ctx)
	s.flow.ClearOauthCodeVerifier(ctx)

	token, err := s.oauth2Config.Exchange(ctx, code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to exchange code for token: %v", ErrInvalidToken, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", nil, fmt.Errorf("%w: no id_token in oauth2 token", ErrInvalidToken)
	}

	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to verify ID token: %v", ErrInvalidToken, err)
	}

	var nonceClaim struct {
		Nonce string `json:"nonce"`
	}
	if err := idToken.Claims(&nonceClaim); err != nil {
		return "", nil, fmt.Errorf("%w: failed to extract nonce: %v", ErrInvalidToken, err)
	}

	if nonceClaim.Nonce != s.flow.GetOauthNonce(ctx) {
		return "", nil, fmt.Errorf("%w: nonce mismatch", ErrInvalidToken)
	}

	s.flow.ClearOauthNonce(ctx)

	claims, err := s.Verify(ctx, rawIDToken)
	if err != nil {
		return "", nil, err
	}

	return rawIDToken, claims, nil
}
