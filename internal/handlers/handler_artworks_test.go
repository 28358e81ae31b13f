package handlers

import (
	"errors"
	"net/http"
	"testing"

	"art-gallery/internal/models"
	"art-gallery/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestArtworksHandler_ServesFromCache(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/artworks")
	defer tc.Finish()

	cached := []models.Artwork{{ID: "1", Title: "Starry Night"}}
	tc.MockCache.EXPECT().GetArtworks(gomock.Any()).Return(cached, true)

	tc.CallHandler(GETArtworksHandler)

	tc.AssertStatus(t, http.StatusOK)
	if got := tc.GetJSONResponseArray(t); len(got) != 1 {
		t.Fatalf("expected 1 artwork, got %d", len(got))
	}
}

func TestArtworksHandler_FallsBackToStorageAndFillsCache(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/artworks")
	defer tc.Finish()

	stored := []models.Artwork{
		{ID: "1", Title: "Starry Night"},
		{ID: "2", Title: "The Scream"},
	}

	tc.MockCache.EXPECT().GetArtworks(gomock.Any()).Return(nil, false)
	tc.MockStorage.EXPECT().ListArtworks(gomock.Any()).Return(stored, nil)
	tc.MockCache.EXPECT().SetArtworks(gomock.Any(), stored)

	tc.CallHandler(GETArtworksHandler)

	tc.AssertStatus(t, http.StatusOK)
	if got := tc.GetJSONResponseArray(t); len(got) != 2 {
		t.Fatalf("expected 2 artworks, got %d", len(got))
	}
}

func TestArtworksHandler_Should500OnStorageFailure(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/artworks")
	defer tc.Finish()

	tc.MockCache.EXPECT().GetArtworks(gomock.Any()).Return(nil, false)
	tc.MockStorage.EXPECT().ListArtworks(gomock.Any()).Return(nil, errors.New("connection refused"))

	tc.CallHandler(GETArtworksHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	tc.AssertJSONField(t, "message", "Internal Server Error")
}

func TestCreateArtworkHandler_Creates(t *testing.T) {
	tc := testutil.NewTestContext(t, "POST", "/api/artworks")
	defer tc.Finish()
	tc.WithClaims("admin")
	tc.WithJSONBody(t, map[string]string{
		"title":       "Starry Night",
		"artist_name": "Vincent van Gogh",
		"image_url":   "https://img.example/starry.jpg",
	})

	created := &models.Artwork{ID: "abc", Title: "Starry Night", ArtistName: "Vincent van Gogh"}

	tc.MockStorage.EXPECT().CreateArtwork(gomock.Any(), gomock.Any()).Return(created, nil)
	tc.MockCache.EXPECT().Invalidate(gomock.Any())

	tc.CallHandler(POSTArtworksHandler)

	tc.AssertStatus(t, http.StatusCreated)
	tc.AssertJSONField(t, "id", "abc")
	tc.AssertJSONField(t, "title", "Starry Night")
}

func TestCreateArtworkHandler_Should400OnMissingFields(t *testing.T) {
	tc := testutil.NewTestContext(t, "POST", "/api/artworks")
	defer tc.Finish()
	tc.WithJSONBody(t, map[string]string{"title": "Untitled"})

	tc.CallHandler(POSTArtworksHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
}
