package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"art-gallery/internal/config"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

type flowKey string

const (
	flowKeyOauthState         flowKey = "oauth_state"
	flowKeyOauthNonce         flowKey = "oauth_nonce"
	flowKeyOauthCodeVerifier  flowKey = "oauth_code_verifier"
	flowKeyRedirectAfterLogin flowKey = "redirect_after_login"
)

// FlowSessionManager holds the short-lived state of an in-progress OIDC
// login (state, nonce, PKCE verifier). It never holds authentication state:
// once the callback completes, the session token cookie is the only
// credential.
type FlowSessionManager struct {
	*scs.SessionManager
}

func NewFlowSessionManager(logger *slog.Logger, cfg *config.Config) (*FlowSessionManager, error) {
	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.SessionIndex,
			MinIdleConns: 2,
		})

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		logger.Info("flow sessions stored in redis", "address", cfg.Redis.Address, "db", cfg.Redis.SessionIndex)
		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = cfg.Sessions.FixedTimeout

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &FlowSessionManager{SessionManager: sessionManager}, nil
}

func (s *FlowSessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

func (s *FlowSessionManager) SetOauthState(ctx context.Context, state string) {
	s.Put(ctx, string(flowKeyOauthState), state)
}

func (s *FlowSessionManager) GetOauthState(ctx context.Context) string {
	return s.GetString(ctx, string(flowKeyOauthState))
}

func (s *FlowSessionManager) ClearOauthState(ctx context.Context) {
	s.Remove(ctx, string(flowKeyOauthState))
}

func (s *FlowSessionManager) SetOauthNonce(ctx context.Context, nonce string) {
	s.Put(ctx, string(flowKeyOauthNonce), nonce)
}

func (s *FlowSessionManager) GetOauthNonce(ctx context.Context) string {
	return s.GetString(ctx, string(flowKeyOauthNonce))
}

func (s *FlowSessionManager) ClearOauthNonce(ctx context.Context) {
	s.Remove(ctx, string(flowKeyOauthNonce))
}

func (s *FlowSessionManager) SetOauthCodeVerifier(ctx context.Context, verifier string) {
	s.Put(ctx, string(flowKeyOauthCodeVerifier), verifier)
}

func (s *FlowSessionManager) GetOauthCodeVerifier(ctx context.Context) string {
	return s.GetString(ctx, string(flowKeyOauthCodeVerifier))
}

func (s *FlowSessionManager) ClearOauthCodeVerifier(ctx context.Context) {
	s.Remove(ctx, string(flowKeyOauthCodeVerifier))
}

func (s *FlowSessionManager) SetRedirectAfterLogin(ctx context.Context, redirectAfterLogin string) {
	s.Put(ctx, string(flowKeyRedirectAfterLogin), redirectAfterLogin)
}

func (s *FlowSessionManager) GetRedirectAfterLogin(ctx context.Context) string {
	return s.GetString(ctx, string(flowKeyRedirectAfterLogin))
}
