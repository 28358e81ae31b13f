package images

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"art-gallery/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader stores artwork images in an S3-compatible bucket and returns
// their public URLs.
type Uploader struct {
	client *s3.Client
	cfg    config.UploadsConfig
	logger *slog.Logger
}

func NewUploader(cfg config.UploadsConfig, logger *slog.Logger) *Uploader {
	options := s3.Options{
		Region: cfg.Region,
		Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.AccessKeyID,
				SecretAccessKey: cfg.SecretAccessKey,
			}, nil
		}),
		UsePathStyle: cfg.UsePathStyle,
	}

	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &Uploader{
		client: s3.New(options),
		cfg:    cfg,
		logger: logger,
	}
}

func (u *Uploader) Upload(ctx context.Context, filename, contentType string, size int64, body []byte) (string, error) {
	if size > u.cfg.MaxSizeBytes {
		return "", fmt.Errorf("upload of %d bytes exceeds limit of %d", size, u.cfg.MaxSizeBytes)
	}

	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	key := u.cfg.Prefix + uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	u.logger.Info("stored artwork image", "key", key, "bytes", size)

	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	if u.cfg.PublicBaseURL != "" {
		return strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + key
	}

	if u.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.cfg.Endpoint, "/"), u.cfg.Bucket, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.cfg.Bucket, u.cfg.Region, key)
}
