package usecase

import (
	"context"
	"time"

	"alumnihub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateEventInput defines the data accepted when creating an event.
// Title, Date and Venue are mandatory; the rest falls back to defaults.
type CreateEventInput struct {
	Title           string
	Date            time.Time
	Time            string
	Venue           string
	Description     string
	LongDescription string
	Status          string
	Attendees       int
	Category        string
	Highlight       bool
	Tags            []string
	Speakers        []entity.Speaker
	Schedule        []entity.ScheduleItem
	Highlights      []string
}

// UpdateEventInput replaces the stored event wholesale, matching the
// document-style update of the original API.
type UpdateEventInput struct {
	ID uuid.UUID
	CreateEventInput
}

// EventUsecase defines the event catalogue operations.
type EventUsecase interface {
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, input *UpdateEventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}

// AlbumUsecase lists the photo-gallery album index.
type AlbumUsecase interface {
	ListAlbums(ctx context.Context) ([]*entity.Album, error)
}
