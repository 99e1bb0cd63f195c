package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AlbumModel mirrors the 'albums' table, the metadata index of the photo
// gallery. Photo files live in external storage.
type AlbumModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Year      int       `gorm:"not null;index"`
	Slug      string    `gorm:"type:varchar(100);unique;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Event     string    `gorm:"type:varchar(255)"`
	Date      string    `gorm:"type:varchar(50)"`
	Photos    int       `gorm:"not null;default:0"`
	Accent    string    `gorm:"type:varchar(50)"`
	Tags      datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlbumModel) TableName() string {
	return "albums"
}
