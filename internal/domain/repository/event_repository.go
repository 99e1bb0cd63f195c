package repository

import (
	"context"
	"errors"

	"alumnihub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when no event matches the given ID.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines persistence operations for events.
type EventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves a single event.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// List returns all events, newest date first.
	List(ctx context.Context) ([]*entity.Event, error)

	// Update replaces the stored event and returns the updated record.
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)

	// Delete removes the event permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
