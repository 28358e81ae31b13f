package handlers

import (
	"net/http"
	"strconv"

	"art-gallery/internal/middlewares"
)

// GETAuditHandler returns the most recent login audit entries, newest first.
func GETAuditHandler(ctx *middlewares.AppContext) {
	limit := 50
	if raw := ctx.Request.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 500 {
			ctx.SetJSONError(http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = parsed
	}

	audits, err := ctx.Storage.GetRecentLoginAudits(ctx.Request.Context(), limit)
	if err != nil {
		ctx.Logger.Error("failed to list login audits", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, auditResponse{Audits: audits})
}
