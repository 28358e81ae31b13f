package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"art-gallery/internal/auth"
	"art-gallery/internal/cache"
	"art-gallery/internal/config"
	"art-gallery/internal/models"
	"art-gallery/internal/storage"
)

type AppContext struct {
	context.Context
	Config       *config.Config
	Logger       *slog.Logger
	Auth         auth.Scheme
	Cookies      *auth.CookieManager
	FlowSessions *auth.FlowSessionManager
	OIDCFlow     OIDCFlowProvider
	Storage      storage.StorageProvider
	Cache        cache.CacheProvider
	Reviewer     ReviewProvider
	Uploader     UploadProvider

	Request  *http.Request
	Response http.ResponseWriter

	claims *models.Claims
}

type contextKey string

const appContextKey contextKey = "appContext"

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, scheme auth.Scheme, cookies *auth.CookieManager, flowSessions *auth.FlowSessionManager, oidcFlow OIDCFlowProvider, store storage.StorageProvider, artworkCache cache.CacheProvider, reviewer ReviewProvider, uploader UploadProvider) *AppContext {
	return &AppContext{
		Context:      ctx,
		Config:       cfg,
		Logger:       logger,
		Auth:         scheme,
		Cookies:      cookies,
		FlowSessions: flowSessions,
		OIDCFlow:     oidcFlow,
		Storage:      store,
		Cache:        artworkCache,
		Reviewer:     reviewer,
		Uploader:     uploader,
	}
}

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:      r.Context(),
				Config:       baseCtx.Config,
				Logger:       baseCtx.Logger,
				Auth:         baseCtx.Auth,
				Cookies:      baseCtx.Cookies,
				FlowSessions: baseCtx.FlowSessions,
				OIDCFlow:     baseCtx.OIDCFlow,
				Storage:      baseCtx.Storage,
				Cache:        baseCtx.Cache,
				Reviewer:     baseCtx.Reviewer,
				Uploader:     baseCtx.Uploader,
				Request:      r,
				Response:     w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts an AppHandler to a http.HandlerFunc.
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

// SetClaims attaches the verified claims of the current request. Claims are
// request-scoped and never outlive the request's AppContext.
func (ctx *AppContext) SetClaims(claims *models.Claims) {
	ctx.claims = claims
}

func (ctx *AppContext) GetClaims() *models.Claims {
	return ctx.claims
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"message": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"message": message,
	})
}
