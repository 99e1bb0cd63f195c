// Package model contains the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AlumniModel mirrors the 'alumni' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). Email carries the unique index that backs the
// duplicate-registration check.
type AlumniModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	Phone    string `gorm:"type:varchar(50)"`
	LinkedIn string `gorm:"type:varchar(255)"`

	Department     string `gorm:"type:varchar(100)"`
	GraduationYear int
	RollNumber     string `gorm:"type:varchar(50)"`

	CurrentCompany string `gorm:"type:varchar(255)"`
	JobTitle       string `gorm:"type:varchar(255)"`

	Country     string `gorm:"type:varchar(100);index"`
	City        string `gorm:"type:varchar(100);index"`
	FullAddress string `gorm:"type:text"`
	// GeoJSON order: longitude first, then latitude.
	Longitude float64
	Latitude  float64

	IsApproved bool `gorm:"not null;default:false;index"`
	IsAdmin    bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlumniModel) TableName() string {
	return "alumni"
}
