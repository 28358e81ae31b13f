package storage

import (
	"context"
	"fmt"
	"time"

	"art-gallery/internal/models"
)

func (d *Database) InsertLoginAudit(ctx context.Context, audit *models.LoginAudit) error {
	record := LoginAuditRecord{
		Username:       audit.Username,
		Outcome:        string(audit.Outcome),
		Scheme:         audit.Scheme,
		IPAddress:      audit.IPAddress,
		RawUserAgent:   audit.RawUserAgent,
		BrowserName:    audit.BrowserName,
		BrowserVersion: audit.BrowserVersion,
		OSName:         audit.OSName,
		DeviceType:     audit.DeviceType,
		CreatedAt:      time.Now().UTC(),
	}

	if err := d.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert login audit: %w", err)
	}

	return nil
}

func (d *Database) GetRecentLoginAudits(ctx context.Context, limit int) ([]models.LoginAudit, error) {
	if limit <= 0 {
		limit = 50
	}

	var records []LoginAuditRecord
	err := d.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list login audits: %w", err)
	}

	audits := make([]models.LoginAudit, 0, len(records))
	for i := range records {
		audits = append(audits, records[i].toModel())
	}

	return audits, nil
}
