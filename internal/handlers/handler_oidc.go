package handlers

import (
	"net/http"
	"strings"

	"art-gallery/internal/metrics"
	"art-gallery/internal/middlewares"
	"art-gallery/internal/models"
)

// GETOIDCLoginHandler begins the identity-provider login flow.
func GETOIDCLoginHandler(ctx *middlewares.AppContext) {
	if redirect := ctx.Request.URL.Query().Get("rd"); isSafeRedirect(redirect) {
		ctx.FlowSessions.SetRedirectAfterLogin(ctx.Request.Context(), redirect)
	}

	authURL, err := ctx.OIDCFlow.StartLogin(ctx.Request.Context())
	if err != nil {
		ctx.Logger.Error("failed to start login flow", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Redirect(authURL, http.StatusFound)
}

// GETOIDCCallbackHandler finishes the identity-provider login flow and sets
// the session cookie to the provider's raw ID token.
func GETOIDCCallbackHandler(ctx *middlewares.AppContext) {
	rawIDToken, claims, err := ctx.OIDCFlow.HandleCallback(ctx.Request.Context(), ctx.Request)
	if err != nil {
		ctx.Logger.Info("login callback rejected", "ip", middlewares.GetClientIP(ctx.Request), "error", err)
		metrics.LoginAttempts.WithLabelValues(ctx.Auth.Name(), "error").Inc()
		recordLoginAttempt(ctx, "", models.LoginOutcomeError)
		ctx.Redirect("/admin/login", http.StatusFound)
		return
	}

	ctx.Cookies.Set(ctx.Response, rawIDToken)

	metrics.LoginAttempts.WithLabelValues(ctx.Auth.Name(), "success").Inc()
	recordLoginAttempt(ctx, claims.Subject, models.LoginOutcomeSuccess)

	redirect := ctx.FlowSessions.GetRedirectAfterLogin(ctx.Request.Context())
	if !isSafeRedirect(redirect) {
		redirect = "/admin"
	}

	ctx.Redirect(redirect, http.StatusFound)
}

// isSafeRedirect permits only same-origin absolute paths.
func isSafeRedirect(redirect string) bool {
	return strings.HasPrefix(redirect, "/") && !strings.HasPrefix(redirect, "//")
}
