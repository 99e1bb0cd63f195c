package usecase

import (
	"context"

	"alumnihub/internal/domain/entity"

	"github.com/google/uuid"
)

// Approval states accepted by the admin dashboard listing.
const (
	DashboardStatusPending  = "pending"
	DashboardStatusApproved = "approved"
)

// --- Input DTOs ---

// DashboardFilter narrows the admin dashboard listing. Unlike the public
// directory it spans both approval states.
type DashboardFilter struct {
	Status         string // "", "pending" or "approved"
	Search         string
	Department     string
	GraduationYear int
	SortBy         string // "", "name", "email" or "year"
}

// --- Output DTOs ---

// DashboardStats is the admin dashboard stats block, account counts plus the
// donation aggregates.
type DashboardStats struct {
	TotalAlumni        int64   `json:"totalAlumni"`
	ApprovedAlumni     int64   `json:"approvedAlumni"`
	PendingAlumni      int64   `json:"pendingAlumni"`
	AdminCount         int64   `json:"adminCount"`
	CompletedDonations int64   `json:"completedDonations"`
	TotalDonatedAmount float64 `json:"totalDonatedAmount"`
	PendingDonations   int64   `json:"pendingDonations"`
}

// AdminUsecase defines the moderation and dashboard operations. Every method
// assumes the caller already passed the admin gate in the delivery layer.
type AdminUsecase interface {
	Pending(ctx context.Context) ([]*entity.Alumni, error)
	Approve(ctx context.Context, alumniID uuid.UUID) (*entity.Alumni, error)
	// Reject permanently deletes the account. There is no undo.
	Reject(ctx context.Context, alumniID uuid.UUID) error
	MakeAdmin(ctx context.Context, alumniID uuid.UUID) (*entity.Alumni, error)
	DashboardAlumni(ctx context.Context, filter *DashboardFilter) ([]*entity.Alumni, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
