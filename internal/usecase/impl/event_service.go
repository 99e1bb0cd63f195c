package impl

import (
	"context"
	"log/slog"

	deliverycontext "alumnihub/internal/delivery/context"
	"alumnihub/internal/domain/entity"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultEventCategory = "Other"

// eventService implements the EventUsecase and AlbumUsecase interfaces.
type eventService struct {
	eventRepo repository.EventRepository
	albumRepo repository.AlbumRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	AlbumRepo repository.AlbumRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		albumRepo: params.AlbumRepo,
		logger:    params.Logger,
	}
}

// NewAlbumService exposes the same service through the album contract.
func NewAlbumService(params EventServiceParams) usecase.AlbumUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		albumRepo: params.AlbumRepo,
		logger:    params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListEvents returns all events, newest date first.
func (srv *eventService) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := srv.eventRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// GetEvent returns one event.
func (srv *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event")
	}

	return event, nil
}

// CreateEvent validates the mandatory fields, fills defaults and persists.
func (srv *eventService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	event, err := buildEvent(input)
	if err != nil {
		return nil, err
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID), slog.String("title", event.Title))

	return event, nil
}

// UpdateEvent replaces the stored event wholesale, like the document update
// of the original API.
func (srv *eventService) UpdateEvent(ctx context.Context, input *usecase.UpdateEventInput) (*entity.Event, error) {
	event, err := buildEvent(&input.CreateEventInput)
	if err != nil {
		return nil, err
	}
	event.ID = input.ID

	updated, err := srv.eventRepo.Update(ctx, event)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to update event")
	}

	srv.log(ctx).Info("Event updated", slog.Any("eventID", updated.ID))

	return updated, nil
}

// DeleteEvent removes the event permanently.
func (srv *eventService) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	if err := srv.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to delete event")
	}

	srv.log(ctx).Info("Event deleted", slog.Any("eventID", eventID))

	return nil
}

// ListAlbums returns the gallery album index, newest year first.
func (srv *eventService) ListAlbums(ctx context.Context) ([]*entity.Album, error) {
	albums, err := srv.albumRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list albums")
	}

	return albums, nil
}

// buildEvent validates the input and applies the defaults of the original
// API: status upcoming, category Other, tags seeded from the category, long
// description falling back to the short one.
func buildEvent(input *usecase.CreateEventInput) (*entity.Event, error) {
	if input.Title == "" || input.Date.IsZero() || input.Venue == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Title, date and venue are required")
	}

	status := entity.EventStatus(input.Status)
	if status == "" {
		status = entity.EventUpcoming
	}
	if status != entity.EventUpcoming && status != entity.EventCompleted {
		return nil, domainerrors.ErrValidation.WithMessage("Status must be upcoming or completed")
	}

	category := input.Category
	if category == "" {
		category = defaultEventCategory
	}

	tags := input.Tags
	if len(tags) == 0 {
		tags = []string{category}
	}

	longDescription := input.LongDescription
	if longDescription == "" {
		longDescription = input.Description
	}

	return &entity.Event{
		Title:           input.Title,
		Date:            input.Date,
		Time:            input.Time,
		Venue:           input.Venue,
		Description:     input.Description,
		LongDescription: longDescription,
		Status:          status,
		Attendees:       input.Attendees,
		Category:        category,
		Highlight:       input.Highlight,
		Tags:            tags,
		Speakers:        input.Speakers,
		Schedule:        input.Schedule,
		Highlights:      input.Highlights,
	}, nil
}
