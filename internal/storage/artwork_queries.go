package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"art-gallery/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (d *Database) ListArtworks(ctx context.Context) ([]models.Artwork, error) {
	var records []ArtworkRecord
	if err := d.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}

	artworks := make([]models.Artwork, 0, len(records))
	for i := range records {
		artworks = append(artworks, records[i].toModel())
	}

	return artworks, nil
}

func (d *Database) GetArtwork(ctx context.Context, id string) (*models.Artwork, error) {
	var record ArtworkRecord
	err := d.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}

	artwork := record.toModel()
	return &artwork, nil
}

func (d *Database) CreateArtwork(ctx context.Context, draft *models.ArtworkDraft) (*models.Artwork, error) {
	now := time.Now().UTC()
	record := ArtworkRecord{
		ID:           uuid.NewString(),
		ImageURL:     draft.ImageURL,
		Title:        draft.Title,
		ArtistName:   draft.ArtistName,
		PaintingDate: draft.PaintingDate,
		Description:  draft.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := d.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}

	artwork := record.toModel()
	return &artwork, nil
}

// UpdateArtwork applies the non-zero fields of the draft. A draft with no set
// fields still bumps updated_at, mirroring a no-op PUT.
func (d *Database) UpdateArtwork(ctx context.Context, id string, draft *models.ArtworkDraft) (*models.Artwork, error) {
	var record ArtworkRecord
	err := d.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load artwork for update: %w", err)
	}

	if draft.ImageURL != "" {
		record.ImageURL = draft.ImageURL
	}
	if draft.Title != "" {
		record.Title = draft.Title
	}
	if draft.ArtistName != "" {
		record.ArtistName = draft.ArtistName
	}
	if draft.PaintingDate != "" {
		record.PaintingDate = draft.PaintingDate
	}
	if draft.Description != "" {
		record.Description = draft.Description
	}
	record.UpdatedAt = time.Now().UTC()

	if err := d.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to update artwork: %w", err)
	}

	artwork := record.toModel()
	return &artwork, nil
}

func (d *Database) DeleteArtwork(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&ArtworkRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete artwork: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
