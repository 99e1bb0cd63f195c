package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventModel mirrors the 'events' table. The list-shaped attributes
// (tags, speakers, schedule, highlights) are stored as JSONB because they
// are always read and written as a whole with the event.
type EventModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Date            time.Time `gorm:"not null;index"`
	Time            string    `gorm:"type:varchar(50)"`
	Venue           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	LongDescription string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	Attendees       int       `gorm:"not null;default:0"`
	Category        string    `gorm:"type:varchar(50);not null"`
	Highlight       bool      `gorm:"not null;default:false"`
	Tags            datatypes.JSON
	Speakers        datatypes.JSON
	Schedule        datatypes.JSON
	Highlights      datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
