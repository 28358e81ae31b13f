package review

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"art-gallery/internal/config"
	"art-gallery/internal/models"
)

const maxImageBytes = 8 << 20

// Client calls the generative language API to produce a short curatorial
// review of an artwork. The image is fetched and sent inline; when the fetch
// fails the prompt degrades to text only.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.ReviewConfig, logger *slog.Logger) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) GenerateReview(ctx context.Context, artwork *models.Artwork) (string, error) {
	parts := []part{{Text: c.buildPrompt(artwork)}}

	if imagePart, err := c.fetchImage(ctx, artwork.ImageURL); err != nil {
		c.logger.Warn("review falling back to text-only prompt", "artwork_id", artwork.ID, "error", err)
	} else {
		parts = append(parts, *imagePart)
	}

	payload, err := json.Marshal(generateRequest{
		Contents:       []content{{Parts: parts}},
		SafetySettings: permissiveSafetySettings,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal review request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build review request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("review request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read review response: %w", err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode review response: %w", err)
	}

	if decoded.Error != nil {
		return "", fmt.Errorf("review provider error %d: %s", decoded.Error.Code, decoded.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("review provider returned status %d", resp.StatusCode)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("review provider returned no candidates")
	}

	text := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("review provider returned an empty review")
	}

	return text, nil
}

func (c *Client) buildPrompt(artwork *models.Artwork) string {
	var b strings.Builder
	b.WriteString("You are an art critic. Write a short, engaging review (2-3 paragraphs) of the following artwork.\n")
	fmt.Fprintf(&b, "Title: %s\n", artwork.Title)
	fmt.Fprintf(&b, "Artist: %s\n", artwork.ArtistName)
	if artwork.PaintingDate != "" {
		fmt.Fprintf(&b, "Date: %s\n", artwork.PaintingDate)
	}
	if artwork.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", artwork.Description)
	}
	return b.String()
}

func (c *Client) fetchImage(ctx context.Context, imageURL string) (*part, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("artwork has no image URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}

	return &part{
		InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		},
	}, nil
}
