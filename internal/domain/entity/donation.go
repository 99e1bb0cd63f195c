package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonationStatus tracks a donation through its payment lifecycle.
// Records are stored for book-keeping only; no gateway is integrated.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
	DonationCancelled DonationStatus = "cancelled"
)

// Donation is a contribution record, optionally linked to an alumni account.
type Donation struct {
	ID          uuid.UUID      `json:"id"`
	DonorName   string         `json:"donorName"`
	DonorEmail  string         `json:"donorEmail,omitempty"`
	IsAnonymous bool           `json:"isAnonymous"`
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Method      string         `json:"paymentMethod"`
	Message     string         `json:"message,omitempty"`
	Status      DonationStatus `json:"status"`
	AlumniID    *uuid.UUID     `json:"alumniId,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
}
