package handlers

import (
	"net/http"

	"art-gallery/internal/middlewares"
	"art-gallery/internal/version"
)

// GETHealthHandler answers 200 while the database is reachable and 503
// otherwise.
func GETHealthHandler(ctx *middlewares.AppContext) {
	if err := ctx.Storage.Ping(ctx.Request.Context()); err != nil {
		ctx.Logger.Error("health check failed", "error", err)
		ctx.WriteJSON(http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Version: version.GetVersion(),
		})
		return
	}

	ctx.WriteJSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Version: version.GetVersion(),
	})
}
