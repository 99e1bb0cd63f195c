package impl

import (
	"context"
	"testing"
	"time"

	"alumnihub/internal/domain/entity"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEventService(t *testing.T) (usecase.EventUsecase, usecase.AlbumUsecase, *fakeEventRepo) {
	t.Helper()

	repo := newFakeEventRepo()
	params := EventServiceParams{
		EventRepo: repo,
		AlbumRepo: &fakeAlbumRepo{albums: []*entity.Album{
			{Year: 2025, Slug: "reunion-2025", Title: "Grand Reunion"},
			{Year: 2024, Slug: "sports-day-2024", Title: "Sports Day"},
		}},
		Logger: discardLogger(),
	}

	return NewEventService(params), NewAlbumService(params), repo
}

func createEventInput() *usecase.CreateEventInput {
	return &usecase.CreateEventInput{
		Title:       "Annual Meetup",
		Date:        time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		Venue:       "Main Auditorium",
		Description: "The yearly gathering.",
	}
}

func TestEventService_CreateDefaults(t *testing.T) {
	svc, _, _ := newTestEventService(t)

	event, err := svc.CreateEvent(context.Background(), createEventInput())
	require.NoError(t, err)

	assert.Equal(t, entity.EventUpcoming, event.Status)
	assert.Equal(t, "Other", event.Category)
	assert.Equal(t, []string{"Other"}, event.Tags)
	// Long description falls back to the short one.
	assert.Equal(t, "The yearly gathering.", event.LongDescription)
	assert.NotEqual(t, uuid.Nil, event.ID)
}

func TestEventService_CreateValidation(t *testing.T) {
	svc, _, _ := newTestEventService(t)
	ctx := context.Background()

	missingTitle := createEventInput()
	missingTitle.Title = ""
	_, err := svc.CreateEvent(ctx, missingTitle)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	missingDate := createEventInput()
	missingDate.Date = time.Time{}
	_, err = svc.CreateEvent(ctx, missingDate)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	badStatus := createEventInput()
	badStatus.Status = "postponed"
	_, err = svc.CreateEvent(ctx, badStatus)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestEventService_GetAndList(t *testing.T) {
	svc, _, _ := newTestEventService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, createEventInput())
	require.NoError(t, err)

	later := createEventInput()
	later.Title = "Winter Gala"
	later.Date = created.Date.AddDate(0, 1, 0)
	_, err = svc.CreateEvent(ctx, later)
	require.NoError(t, err)

	found, err := svc.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annual Meetup", found.Title)

	_, err = svc.GetEvent(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest date first.
	assert.Equal(t, "Winter Gala", events[0].Title)
}

func TestEventService_Update(t *testing.T) {
	svc, _, _ := newTestEventService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, createEventInput())
	require.NoError(t, err)

	input := &usecase.UpdateEventInput{ID: created.ID, CreateEventInput: *createEventInput()}
	input.Title = "Annual Meetup (rescheduled)"
	input.Status = string(entity.EventCompleted)

	updated, err := svc.UpdateEvent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Annual Meetup (rescheduled)", updated.Title)
	assert.Equal(t, entity.EventCompleted, updated.Status)

	missing := &usecase.UpdateEventInput{ID: uuid.New(), CreateEventInput: *createEventInput()}
	_, err = svc.UpdateEvent(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_Delete(t *testing.T) {
	svc, _, _ := newTestEventService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, createEventInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteEvent(ctx, created.ID), domainerrors.ErrEventNotFound)
}

func TestEventService_ListAlbums(t *testing.T) {
	_, albums, _ := newTestEventService(t)

	out, err := albums.ListAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "reunion-2025", out[0].Slug)
}
