package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"art-gallery/internal/middlewares"
	"art-gallery/internal/models"
	"art-gallery/internal/storage"

	"github.com/go-chi/chi/v5"
)

// GETArtworkHandler returns a single artwork by id.
func GETArtworkHandler(ctx *middlewares.AppContext) {
	id := chi.URLParam(ctx.Request, "id")

	artwork, err := ctx.Storage.GetArtwork(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Artwork not found")
			return
		}

		ctx.Logger.Error("failed to get artwork", "id", id, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteJSON(http.StatusOK, artwork)
}

// PUTArtworkHandler updates an artwork. PUT and PATCH share the same
// semantics: fields absent from the body are left unchanged.
func PUTArtworkHandler(ctx *middlewares.AppContext) {
	id := chi.URLParam(ctx.Request, "id")

	var draft models.ArtworkDraft
	if err := json.NewDecoder(ctx.Request.Body).Decode(&draft); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	artwork, err := ctx.Storage.UpdateArtwork(ctx.Request.Context(), id, &draft)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Artwork not found")
			return
		}

		ctx.Logger.Error("failed to update artwork", "id", id, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Cache.Invalidate(ctx.Request.Context())
	ctx.Logger.Info("artwork updated", "id", id, "by", ctx.GetClaims().Subject)

	ctx.WriteJSON(http.StatusOK, artwork)
}

// DELETEArtworkHandler removes an artwork. Success answers 204.
func DELETEArtworkHandler(ctx *middlewares.AppContext) {
	id := chi.URLParam(ctx.Request, "id")

	if err := ctx.Storage.DeleteArtwork(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.SetJSONError(http.StatusNotFound, "Artwork not found")
			return
		}

		ctx.Logger.Error("failed to delete artwork", "id", id, "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Cache.Invalidate(ctx.Request.Context())
	ctx.Logger.Info("artwork deleted", "id", id, "by", ctx.GetClaims().Subject)

	ctx.Response.WriteHeader(http.StatusNoContent)
}
