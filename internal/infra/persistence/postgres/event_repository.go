package postgres

import (
	"context"
	"encoding/json"

	"alumnihub/internal/domain/entity"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required event fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID retrieves a single event.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM)
}

// List returns all events, newest date first.
func (repo *eventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Order("date DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		event, err := toEventDomain(eventM)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// Update replaces the stored event and returns the updated record.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", event.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(eventM)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update event")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrEventNotFound
	}

	return repo.FindByID(ctx, event.ID)
}

// Delete removes the event permanently.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) (*entity.Event, error) {
	if data == nil {
		return nil, nil
	}

	event := &entity.Event{
		ID:              data.ID,
		Title:           data.Title,
		Date:            data.Date,
		Time:            data.Time,
		Venue:           data.Venue,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		Status:          entity.EventStatus(data.Status),
		Attendees:       data.Attendees,
		Category:        data.Category,
		Highlight:       data.Highlight,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if err := unmarshalJSONColumn(data.Tags, &event.Tags); err != nil {
		return nil, errors.Wrap(err, "failed to decode event tags")
	}
	if err := unmarshalJSONColumn(data.Speakers, &event.Speakers); err != nil {
		return nil, errors.Wrap(err, "failed to decode event speakers")
	}
	if err := unmarshalJSONColumn(data.Schedule, &event.Schedule); err != nil {
		return nil, errors.Wrap(err, "failed to decode event schedule")
	}
	if err := unmarshalJSONColumn(data.Highlights, &event.Highlights); err != nil {
		return nil, errors.Wrap(err, "failed to decode event highlights")
	}

	return event, nil
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
func fromEventDomain(data *entity.Event) (*model.EventModel, error) {
	if data == nil {
		return nil, nil
	}

	tags, err := marshalJSONColumn(data.Tags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event tags")
	}
	speakers, err := marshalJSONColumn(data.Speakers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event speakers")
	}
	schedule, err := marshalJSONColumn(data.Schedule)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event schedule")
	}
	highlights, err := marshalJSONColumn(data.Highlights)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event highlights")
	}

	return &model.EventModel{
		ID:              data.ID,
		Title:           data.Title,
		Date:            data.Date,
		Time:            data.Time,
		Venue:           data.Venue,
		Description:     data.Description,
		LongDescription: data.LongDescription,
		Status:          string(data.Status),
		Attendees:       data.Attendees,
		Category:        data.Category,
		Highlight:       data.Highlight,
		Tags:            tags,
		Speakers:        speakers,
		Schedule:        schedule,
		Highlights:      highlights,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

// marshalJSONColumn encodes a slice value for a JSONB column, writing an
// empty array rather than NULL for nil slices.
func marshalJSONColumn(value any) (datatypes.JSON, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		raw = []byte("[]")
	}

	return datatypes.JSON(raw), nil
}

func unmarshalJSONColumn(raw datatypes.JSON, target any) error {
	if len(raw) == 0 {
		return nil
	}

	return json.Unmarshal(raw, target)
}
