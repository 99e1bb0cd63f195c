package repository

import (
	"context"

	"alumnihub/internal/domain/entity"
)

// DonationTotals summarizes completed donations for the admin dashboard.
type DonationTotals struct {
	CompletedCount int64
	CompletedSum   float64
	PendingCount   int64
}

// DonationRepository exposes the read paths the dashboard needs. Donations
// are recorded out of band; this service never mutates them.
type DonationRepository interface {
	// Totals aggregates completed count, completed amount sum, and pending count.
	Totals(ctx context.Context) (*DonationTotals, error)

	// ListByStatus returns donations in a given status, newest first.
	ListByStatus(ctx context.Context, status entity.DonationStatus) ([]*entity.Donation, error)
}
