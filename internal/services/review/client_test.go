package review

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"art-gallery/internal/config"
	"art-gallery/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	cfg := config.DefaultReviewConfig
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	return NewClient(cfg, slog.Default())
}

func generateResponseJSON(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func TestGenerateReview_SendsImageInline(t *testing.T) {
	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("fake-jpeg-bytes"))
	}))
	defer imageServer.Close()

	var captured generateRequest
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(generateResponseJSON("A luminous, restless sky.")))
	}))
	defer apiServer.Close()

	client := newTestClient(apiServer.URL)

	artwork := &models.Artwork{
		ID:         "abc",
		Title:      "Starry Night",
		ArtistName: "Vincent van Gogh",
		ImageURL:   imageServer.URL + "/starry.jpg",
	}

	review, err := client.GenerateReview(context.Background(), artwork)
	require.NoError(t, err)
	assert.Equal(t, "A luminous, restless sky.", review)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 2)
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "Starry Night")
	require.NotNil(t, captured.Contents[0].Parts[1].InlineData)
	assert.Equal(t, "image/jpeg", captured.Contents[0].Parts[1].InlineData.MimeType)
	assert.NotEmpty(t, captured.SafetySettings)
}

func TestGenerateReview_FallsBackToTextWhenImageUnreachable(t *testing.T) {
	var captured generateRequest
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(generateResponseJSON("Text-only impression.")))
	}))
	defer apiServer.Close()

	client := newTestClient(apiServer.URL)

	artwork := &models.Artwork{
		ID:       "abc",
		Title:    "Lost Canvas",
		ImageURL: "http://127.0.0.1:1/missing.jpg",
	}

	review, err := client.GenerateReview(context.Background(), artwork)
	require.NoError(t, err)
	assert.Equal(t, "Text-only impression.", review)

	require.Len(t, captured.Contents, 1)
	assert.Len(t, captured.Contents[0].Parts, 1)
}

func TestGenerateReview_SurfacesProviderError(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer apiServer.Close()

	client := newTestClient(apiServer.URL)

	_, err := client.GenerateReview(context.Background(), &models.Artwork{ID: "abc", Title: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestGenerateReview_RejectsEmptyCandidates(t *testing.T) {
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer apiServer.Close()

	client := newTestClient(apiServer.URL)

	_, err := client.GenerateReview(context.Background(), &models.Artwork{ID: "abc", Title: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
