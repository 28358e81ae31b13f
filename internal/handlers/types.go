package handlers

import "art-gallery/internal/models"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type authStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Scheme        string `json:"scheme"`
	Subject       string `json:"subject,omitempty"`
	Role          string `json:"role,omitempty"`
	ExpiresAt     string `json:"expires_at,omitempty"`
}

type reviewRequest struct {
	ArtworkID string `json:"artwork_id"`
}

type reviewResponse struct {
	Review string `json:"review"`
}

type uploadResponse struct {
	ImageURL string `json:"image_url"`
}

type auditResponse struct {
	Audits []models.LoginAudit `json:"audits"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
