package middlewares

import (
	"context"
	"net/http"

	"art-gallery/internal/models"
)

//go:generate mockgen -source=providers.go -destination=../mocks/providers.go -package=mocks

// OIDCFlowProvider drives the identity-provider login flow. It is nil when
// the local scheme is active.
type OIDCFlowProvider interface {
	StartLogin(ctx context.Context) (string, error)
	HandleCallback(ctx context.Context, r *http.Request) (string, *models.Claims, error)
}

// ReviewProvider generates a short curatorial review for an artwork.
type ReviewProvider interface {
	GenerateReview(ctx context.Context, artwork *models.Artwork) (string, error)
}

// UploadProvider stores an uploaded image and returns its public URL.
type UploadProvider interface {
	Upload(ctx context.Context, filename, contentType string, size int64, body []byte) (string, error)
}
