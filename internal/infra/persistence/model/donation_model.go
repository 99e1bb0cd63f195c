package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel mirrors the 'donations' table. AlumniID is nullable because
// donations can come from people without an account.
type DonationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorName   string    `gorm:"type:varchar(200);not null"`
	DonorEmail  string    `gorm:"type:varchar(255)"`
	IsAnonymous bool      `gorm:"not null;default:false"`
	Amount      float64   `gorm:"not null"`
	Currency    string    `gorm:"type:varchar(10);not null"`
	Method      string    `gorm:"type:varchar(50)"`
	Message     string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	AlumniID    *uuid.UUID
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
