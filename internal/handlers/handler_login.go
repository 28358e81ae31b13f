package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"art-gallery/internal/auth"
	"art-gallery/internal/metrics"
	"art-gallery/internal/middlewares"
	"art-gallery/internal/models"
)

// POSTLoginHandler authenticates the admin credentials and sets the session
// cookie. Invalid credentials answer 401 without distinguishing which
// credential was wrong.
func POSTLoginHandler(ctx *middlewares.AppContext) {
	var req loginRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	token, _, err := ctx.Auth.Issue(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			ctx.Logger.Info("login rejected", "username", req.Username, "ip", middlewares.GetClientIP(ctx.Request))
			metrics.LoginAttempts.WithLabelValues(ctx.Auth.Name(), "invalid_credentials").Inc()
			recordLoginAttempt(ctx, req.Username, models.LoginOutcomeInvalidCredentials)
			ctx.SetJSONError(http.StatusUnauthorized, "Invalid credentials")
			return
		}

		ctx.Logger.Error("login failed", "username", req.Username, "error", err)
		metrics.LoginAttempts.WithLabelValues(ctx.Auth.Name(), "error").Inc()
		recordLoginAttempt(ctx, req.Username, models.LoginOutcomeError)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Cookies.Set(ctx.Response, token)

	metrics.LoginAttempts.WithLabelValues(ctx.Auth.Name(), "success").Inc()
	recordLoginAttempt(ctx, req.Username, models.LoginOutcomeSuccess)

	ctx.WriteJSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
	})
}
