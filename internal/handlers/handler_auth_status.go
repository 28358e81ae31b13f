package handlers

import (
	"net/http"
	"time"

	"art-gallery/internal/middlewares"
)

// GETAuthStatusHandler reports whether the request carries a valid session.
// It always answers 200; "not logged in" is a state, not an error.
func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	resp := authStatusResponse{
		Authenticated: false,
		Scheme:        ctx.Auth.Name(),
	}

	token, err := ctx.Cookies.Read(ctx.Request)
	if err != nil {
		ctx.WriteJSON(http.StatusOK, resp)
		return
	}

	claims, err := ctx.Auth.Verify(ctx.Request.Context(), token)
	if err != nil {
		ctx.Cookies.Clear(ctx.Response)
		ctx.WriteJSON(http.StatusOK, resp)
		return
	}

	resp.Authenticated = true
	resp.Subject = claims.Subject
	resp.Role = claims.Role
	if !claims.ExpiresAt.IsZero() {
		resp.ExpiresAt = claims.ExpiresAt.UTC().Format(time.RFC3339)
	}

	ctx.WriteJSON(http.StatusOK, resp)
}
