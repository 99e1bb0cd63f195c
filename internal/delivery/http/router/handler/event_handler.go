package handler

import (
	"log/slog"
	"net/http"
	"time"

	"alumnihub/internal/delivery/http/response"
	"alumnihub/internal/domain/entity"
	"alumnihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for the event catalogue routes.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all events.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.uc.ListEvents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// Get returns one event.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	event, err := h.uc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

type eventRequest struct {
	Title           string                `json:"title" validate:"required"`
	Date            time.Time             `json:"date" validate:"required"`
	Time            string                `json:"time"`
	Venue           string                `json:"venue" validate:"required"`
	Description     string                `json:"description"`
	LongDescription string                `json:"longDescription"`
	Status          string                `json:"status" validate:"omitempty,oneof=upcoming completed"`
	Attendees       int                   `json:"attendees"`
	Category        string                `json:"category"`
	Highlight       bool                  `json:"highlight"`
	Tags            []string              `json:"tags"`
	Speakers        []entity.Speaker      `json:"speakers"`
	Schedule        []entity.ScheduleItem `json:"schedule"`
	Highlights      []string              `json:"highlights"`
}

func (r *eventRequest) toInput() usecase.CreateEventInput {
	return usecase.CreateEventInput{
		Title:           r.Title,
		Date:            r.Date,
		Time:            r.Time,
		Venue:           r.Venue,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Status:          r.Status,
		Attendees:       r.Attendees,
		Category:        r.Category,
		Highlight:       r.Highlight,
		Tags:            r.Tags,
		Speakers:        r.Speakers,
		Schedule:        r.Schedule,
		Highlights:      r.Highlights,
	}
}

// Create adds a new event.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := req.toInput()
	event, err := h.uc.CreateEvent(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// Update replaces an event.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), &usecase.UpdateEventInput{
		ID:               id,
		CreateEventInput: req.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}
