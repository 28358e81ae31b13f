package handlers

import (
	"net/http"
	"testing"

	"art-gallery/internal/models"
	"art-gallery/internal/storage"
	"art-gallery/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestGetArtworkHandler_ReturnsArtwork(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/artworks/abc")
	defer tc.Finish()
	tc.WithURLParam("id", "abc")

	tc.MockStorage.EXPECT().GetArtwork(gomock.Any(), "abc").
		Return(&models.Artwork{ID: "abc", Title: "Starry Night"}, nil)

	tc.CallHandler(GETArtworkHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "id", "abc")
}

func TestGetArtworkHandler_Should404OnUnknownID(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/artworks/nope")
	defer tc.Finish()
	tc.WithURLParam("id", "nope")

	tc.MockStorage.EXPECT().GetArtwork(gomock.Any(), "nope").Return(nil, storage.ErrNotFound)

	tc.CallHandler(GETArtworkHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONField(t, "message", "Artwork not found")
}

func TestUpdateArtworkHandler_Updates(t *testing.T) {
	tc := testutil.NewTestContext(t, "PUT", "/api/artworks/abc")
	defer tc.Finish()
	tc.WithClaims("admin")
	tc.WithJSONBody(t, map[string]string{"title": "Starry Night (restored)"})
	tc.WithURLParam("id", "abc")

	updated := &models.Artwork{ID: "abc", Title: "Starry Night (restored)"}

	tc.MockStorage.EXPECT().UpdateArtwork(gomock.Any(), "abc", gomock.Any()).Return(updated, nil)
	tc.MockCache.EXPECT().Invalidate(gomock.Any())

	tc.CallHandler(PUTArtworkHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "title", "Starry Night (restored)")
}

func TestUpdateArtworkHandler_Should404OnUnknownID(t *testing.T) {
	tc := testutil.NewTestContext(t, "PUT", "/api/artworks/nope")
	defer tc.Finish()
	tc.WithJSONBody(t, map[string]string{"title": "whatever"})
	tc.WithURLParam("id", "nope")

	tc.MockStorage.EXPECT().UpdateArtwork(gomock.Any(), "nope", gomock.Any()).
		Return(nil, storage.ErrNotFound)

	tc.CallHandler(PUTArtworkHandler)

	tc.AssertStatus(t, http.StatusNotFound)
}

func TestDeleteArtworkHandler_Answers204(t *testing.T) {
	tc := testutil.NewTestContext(t, "DELETE", "/api/artworks/abc")
	defer tc.Finish()
	tc.WithClaims("admin")
	tc.WithURLParam("id", "abc")

	tc.MockStorage.EXPECT().DeleteArtwork(gomock.Any(), "abc").Return(nil)
	tc.MockCache.EXPECT().Invalidate(gomock.Any())

	tc.CallHandler(DELETEArtworkHandler)

	tc.AssertStatus(t, http.StatusNoContent)
	if tc.Response.Body.Len() != 0 {
		t.Error("204 response must have an empty body")
	}
}

func TestDeleteArtworkHandler_Should404OnUnknownID(t *testing.T) {
	tc := testutil.NewTestContext(t, "DELETE", "/api/artworks/nope")
	defer tc.Finish()
	tc.WithURLParam("id", "nope")

	tc.MockStorage.EXPECT().DeleteArtwork(gomock.Any(), "nope").Return(storage.ErrNotFound)

	tc.CallHandler(DELETEArtworkHandler)

	tc.AssertStatus(t, http.StatusNotFound)
}
