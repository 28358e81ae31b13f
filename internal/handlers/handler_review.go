package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"art-gallery/internal/metrics"
	"art-gallery/internal/middlewares"
	"art-gallery/internal/storage"
)

// POSTReviewHandler generates an AI review for an existing artwork. Provider
// failures answer 502: the fault is upstream, not in the request.
func POSTReviewHandler(ctx *middlewares.AppContext) {
	if ctx.Reviewer == nil {
		ctx.SetJSONError(http.StatusNotImplemented, "Review generation is not configured")
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ArtworkID == "" {
		ctx.SetJSONError(http.StatusBadRequest, "artwork_id is required")
		return
	}

	artwork, err := ctx.Storage.GetArtwork(ctx.Request.Context(), req.ArtworkID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Artwork not found")
			return
		}

		ctx.Logger.Error("failed to load artwork for review", "id", req.ArtworkID, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	review, err := ctx.Reviewer.GenerateReview(ctx.Request.Context(), artwork)
	if err != nil {
		ctx.Logger.Error("review generation failed", "id", req.ArtworkID, "error", err)
		metrics.ReviewRequests.WithLabelValues("error").Inc()
		ctx.SetJSONError(http.StatusBadGateway, "Review generation failed")
		return
	}

	metrics.ReviewRequests.WithLabelValues("success").Inc()
	ctx.WriteJSON(http.StatusOK, reviewResponse{Review: review})
}
