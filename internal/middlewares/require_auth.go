package middlewares

import (
	"net/http"

	"art-gallery/internal/metrics"
)

const loginPath = "/admin/login"

// RequireAdminPage gates the admin pages. Missing cookie, failed
// verification or a non-admin role all end the same way: the cookie is
// cleared and the client is sent to the login page. The guard never
// distinguishes causes to the client; the cause goes to the log.
func RequireAdminPage(next http.Handler) http.Handler {
	return requireAdmin(next, func(ctx *AppContext) {
		ctx.Redirect(loginPath, http.StatusFound)
	})
}

// RequireAdminAPI gates the admin API routes. Same decision procedure as
// RequireAdminPage, but failures answer 401 JSON instead of redirecting.
func RequireAdminAPI(next http.Handler) http.Handler {
	return requireAdmin(next, func(ctx *AppContext) {
		ctx.SetJSONError(http.StatusUnauthorized, "Unauthorized")
	})
}

func requireAdmin(next http.Handler, reject func(*AppContext)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := GetAppContext(r)
		if ctx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		token, err := ctx.Cookies.Read(r)
		if err != nil {
			ctx.Logger.Debug("admin access denied", "path", r.URL.Path, "reason", err)
			metrics.TokenVerifications.WithLabelValues(ctx.Auth.Name(), "missing").Inc()
			ctx.Cookies.Clear(w)
			reject(ctx)
			return
		}

		claims, err := ctx.Auth.Verify(r.Context(), token)
		if err != nil {
			ctx.Logger.Info("admin access denied", "path", r.URL.Path, "reason", err)
			metrics.TokenVerifications.WithLabelValues(ctx.Auth.Name(), "invalid").Inc()
			ctx.Cookies.Clear(w)
			reject(ctx)
			return
		}

		if !claims.IsAdmin() {
			ctx.Logger.Info("admin access denied", "path", r.URL.Path, "subject", claims.Subject, "role", claims.Role)
			metrics.TokenVerifications.WithLabelValues(ctx.Auth.Name(), "forbidden").Inc()
			ctx.Cookies.Clear(w)
			reject(ctx)
			return
		}

		metrics.TokenVerifications.WithLabelValues(ctx.Auth.Name(), "ok").Inc()
		ctx.SetClaims(claims)
		next.ServeHTTP(w, r)
	})
}
