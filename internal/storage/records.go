package storage

import (
	"time"

	"art-gallery/internal/models"
)

type ArtworkRecord struct {
	ID           string `gorm:"primaryKey;size:36"`
	ImageURL     string `gorm:"not null"`
	Title        string `gorm:"not null;index"`
	ArtistName   string `gorm:"not null;index"`
	PaintingDate string
	Description  string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ArtworkRecord) TableName() string {
	return "artworks"
}

func (r *ArtworkRecord) toModel() models.Artwork {
	return models.Artwork{
		ID:           r.ID,
		ImageURL:     r.ImageURL,
		Title:        r.Title,
		ArtistName:   r.ArtistName,
		PaintingDate: r.PaintingDate,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type LoginAuditRecord struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"index"`
	Outcome        string `gorm:"not null"`
	Scheme         string `gorm:"not null"`
	IPAddress      string
	RawUserAgent   string `gorm:"type:text"`
	BrowserName    string
	BrowserVersion string
	OSName         string
	DeviceType     string
	CreatedAt      time.Time `gorm:"index"`
}

func (LoginAuditRecord) TableName() string {
	return "login_audits"
}

func (r *LoginAuditRecord) toModel() models.LoginAudit {
	return models.LoginAudit{
		ID:             r.ID,
		Username:       r.Username,
		Outcome:        models.LoginOutcome(r.Outcome),
		Scheme:         r.Scheme,
		IPAddress:      r.IPAddress,
		RawUserAgent:   r.RawUserAgent,
		BrowserName:    r.BrowserName,
		BrowserVersion: r.BrowserVersion,
		OSName:         r.OSName,
		DeviceType:     r.DeviceType,
		CreatedAt:      r.CreatedAt,
	}
}
