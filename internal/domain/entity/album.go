package entity

import (
	"time"

	"github.com/google/uuid"
)

// Album is a photo-album index entry shown on the gallery page.
// The photos themselves live in external storage; this is metadata only.
type Album struct {
	ID        uuid.UUID `json:"id"`
	Year      int       `json:"year"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Event     string    `json:"event"`
	Date      string    `json:"date"`
	Photos    int       `json:"photos"`
	Accent    string    `json:"accent,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
