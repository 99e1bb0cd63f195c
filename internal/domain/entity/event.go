package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus distinguishes upcoming from past events.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventCompleted EventStatus = "completed"
)

// Speaker is one presenter attached to an event.
type Speaker struct {
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ScheduleItem is one slot in an event's programme.
type ScheduleItem struct {
	Time  string `json:"time"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

// Event is an alumni-network event record.
type Event struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Date            time.Time      `json:"date"`
	Time            string         `json:"time,omitempty"`
	Venue           string         `json:"venue"`
	Description     string         `json:"description,omitempty"`
	LongDescription string         `json:"longDescription,omitempty"`
	Status          EventStatus    `json:"status"`
	Attendees       int            `json:"attendees"`
	Category        string         `json:"category"`
	Highlight       bool           `json:"highlight"`
	Tags            []string       `json:"tags,omitempty"`
	Speakers        []Speaker      `json:"speakers"`
	Schedule        []ScheduleItem `json:"schedule"`
	Highlights      []string       `json:"highlights"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
