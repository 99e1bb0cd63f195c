package impl

import (
	"context"
	"log/slog"

	deliverycontext "alumnihub/internal/delivery/context"
	"alumnihub/internal/domain/entity"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	alumniRepo   repository.AlumniRepository
	donationRepo repository.DonationRepository
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AlumniRepo   repository.AlumniRepository
	DonationRepo repository.DonationRepository
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		alumniRepo:   params.AlumniRepo,
		donationRepo: params.DonationRepo,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Pending lists the accounts awaiting moderation.
func (srv *adminService) Pending(ctx context.Context) ([]*entity.Alumni, error) {
	records, err := srv.alumniRepo.List(ctx, repository.Filter{Approved: boolPtr(false)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending alumni")
	}

	return records, nil
}

// Approve flips the approval flag and returns the updated record.
func (srv *adminService) Approve(ctx context.Context, alumniID uuid.UUID) (*entity.Alumni, error) {
	updated, err := srv.alumniRepo.SetApproval(ctx, alumniID, true)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return nil, domainerrors.ErrAlumniNotFound
		}

		return nil, errors.Wrap(err, "failed to approve alumni")
	}

	srv.log(ctx).Info("Alumni approved", slog.Any("alumniID", alumniID))

	return updated, nil
}

// Reject permanently deletes the account. The record is gone afterwards;
// the person can register again from scratch.
func (srv *adminService) Reject(ctx context.Context, alumniID uuid.UUID) error {
	if err := srv.alumniRepo.Delete(ctx, alumniID); err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return domainerrors.ErrAlumniNotFound
		}

		return errors.Wrap(err, "failed to reject alumni")
	}

	srv.log(ctx).Info("Alumni rejected and deleted", slog.Any("alumniID", alumniID))

	return nil
}

// MakeAdmin flips the admin flag and returns the updated record.
func (srv *adminService) MakeAdmin(ctx context.Context, alumniID uuid.UUID) (*entity.Alumni, error) {
	updated, err := srv.alumniRepo.SetAdmin(ctx, alumniID, true)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return nil, domainerrors.ErrAlumniNotFound
		}

		return nil, errors.Wrap(err, "failed to grant admin rights")
	}

	srv.log(ctx).Info("Admin rights granted", slog.Any("alumniID", alumniID))

	return updated, nil
}

// DashboardAlumni lists accounts across both approval states for the
// moderation dashboard.
func (srv *adminService) DashboardAlumni(ctx context.Context, filter *usecase.DashboardFilter) ([]*entity.Alumni, error) {
	repoFilter := repository.Filter{
		Search:         filter.Search,
		Department:     filter.Department,
		GraduationYear: filter.GraduationYear,
		SortBy:         repository.Sort(filter.SortBy),
	}

	switch filter.Status {
	case usecase.DashboardStatusPending:
		repoFilter.Approved = boolPtr(false)
	case usecase.DashboardStatusApproved:
		repoFilter.Approved = boolPtr(true)
	}

	records, err := srv.alumniRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dashboard alumni")
	}

	return records, nil
}

// DashboardStats aggregates account counts and donation totals.
func (srv *adminService) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	total, err := srv.alumniRepo.Count(ctx, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count alumni")
	}

	approved, err := srv.alumniRepo.Count(ctx, boolPtr(true), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count approved alumni")
	}

	pending, err := srv.alumniRepo.Count(ctx, boolPtr(false), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending alumni")
	}

	admins, err := srv.alumniRepo.Count(ctx, nil, boolPtr(true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to count admins")
	}

	totals, err := srv.donationRepo.Totals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate donations")
	}

	return &usecase.DashboardStats{
		TotalAlumni:        total,
		ApprovedAlumni:     approved,
		PendingAlumni:      pending,
		AdminCount:         admins,
		CompletedDonations: totals.CompletedCount,
		TotalDonatedAmount: totals.CompletedSum,
		PendingDonations:   totals.PendingCount,
	}, nil
}
