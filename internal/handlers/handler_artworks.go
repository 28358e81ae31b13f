package handlers

import (
	"encoding/json"
	"net/http"

	"art-gallery/internal/middlewares"
	"art-gallery/internal/models"
)

// GETArtworksHandler lists every artwork, newest first. The listing is
// public and served from cache when a fresh copy exists.
func GETArtworksHandler(ctx *middlewares.AppContext) {
	if artworks, ok := ctx.Cache.GetArtworks(ctx.Request.Context()); ok {
		ctx.WriteJSON(http.StatusOK, artworks)
		return
	}

	artworks, err := ctx.Storage.ListArtworks(ctx.Request.Context())
	if err != nil {
		ctx.Logger.Error("failed to list artworks", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Cache.SetArtworks(ctx.Request.Context(), artworks)
	ctx.WriteJSON(http.StatusOK, artworks)
}

// POSTArtworksHandler creates an artwork from the submitted draft.
func POSTArtworksHandler(ctx *middlewares.AppContext) {
	var draft models.ArtworkDraft
	if err := json.NewDecoder(ctx.Request.Body).Decode(&draft); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	if draft.Title == "" || draft.ArtistName == "" || draft.ImageURL == "" {
		ctx.SetJSONError(http.StatusBadRequest, "title, artist_name and image_url are required")
		return
	}

	artwork, err := ctx.Storage.CreateArtwork(ctx.Request.Context(), &draft)
	if err != nil {
		ctx.Logger.Error("failed to create artwork", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.Cache.Invalidate(ctx.Request.Context())
	ctx.Logger.Info("artwork created", "id", artwork.ID, "title", artwork.Title, "by", ctx.GetClaims().Subject)

	ctx.WriteJSON(http.StatusCreated, artwork)
}
