package models

import "time"

type Artwork struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"image_url"`
	Title        string    `json:"title"`
	ArtistName   string    `json:"artist_name"`
	PaintingDate string    `json:"painting_date"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ArtworkDraft carries the client-supplied fields of an artwork. The zero
// value of a field on update means "leave unchanged".
type ArtworkDraft struct {
	ImageURL     string `json:"image_url"`
	Title        string `json:"title"`
	ArtistName   string `json:"artist_name"`
	PaintingDate string `json:"painting_date"`
	Description  string `json:"description"`
}
