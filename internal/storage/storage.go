package storage

import (
	"context"
	"errors"

	"art-gallery/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type StorageProvider interface {
	ListArtworks(ctx context.Context) ([]models.Artwork, error)
	GetArtwork(ctx context.Context, id string) (*models.Artwork, error)
	CreateArtwork(ctx context.Context, draft *models.ArtworkDraft) (*models.Artwork, error)
	UpdateArtwork(ctx context.Context, id string, draft *models.ArtworkDraft) (*models.Artwork, error)
	DeleteArtwork(ctx context.Context, id string) error

	InsertLoginAudit(ctx context.Context, audit *models.LoginAudit) error
	GetRecentLoginAudits(ctx context.Context, limit int) ([]models.LoginAudit, error)

	Ping(ctx context.Context) error
	Close() error
}
