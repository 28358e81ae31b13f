package storage

import (
	"context"
	"fmt"
	"log/slog"

	"art-gallery/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database is the postgres-backed StorageProvider.
type Database struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewDatabase(cfg config.StorageConfig, logger *slog.Logger) (*Database, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("connected to database", "host", cfg.Host, "database", cfg.Database)

	return &Database{db: db, logger: logger}, nil
}

func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(&ArtworkRecord{}, &LoginAuditRecord{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
