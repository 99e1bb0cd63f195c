package impl

import (
	"context"
	"testing"

	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminService(t *testing.T) (usecase.AdminUsecase, *fakeAlumniRepo) {
	t.Helper()

	repo := newFakeAlumniRepo()
	svc := NewAdminService(AdminServiceParams{
		AlumniRepo: repo,
		DonationRepo: &fakeDonationRepo{totals: repository.DonationTotals{
			CompletedCount: 4,
			CompletedSum:   1250.50,
			PendingCount:   2,
		}},
		Logger: discardLogger(),
	})

	return svc, repo
}

func TestAdminService_Pending(t *testing.T) {
	svc, repo := newTestAdminService(t)

	seedAlumni(repo, "amina", "Kenya", "Nairobi", true)
	pending := seedAlumni(repo, "bruno", "Brazil", "Recife", false)

	records, err := svc.Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, pending.ID, records[0].ID)
}

func TestAdminService_Approve(t *testing.T) {
	svc, repo := newTestAdminService(t)

	pending := seedAlumni(repo, "bruno", "Brazil", "Recife", false)

	updated, err := svc.Approve(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsApproved)

	_, err = svc.Approve(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAlumniNotFound)
}

func TestAdminService_RejectDeletes(t *testing.T) {
	svc, repo := newTestAdminService(t)
	ctx := context.Background()

	pending := seedAlumni(repo, "bruno", "Brazil", "Recife", false)

	require.NoError(t, svc.Reject(ctx, pending.ID))

	// The record is gone for good.
	_, err := repo.FindByID(ctx, pending.ID)
	assert.ErrorIs(t, err, repository.ErrAlumniNotFound)

	assert.ErrorIs(t, svc.Reject(ctx, pending.ID), domainerrors.ErrAlumniNotFound)
}

func TestAdminService_MakeAdmin(t *testing.T) {
	svc, repo := newTestAdminService(t)

	member := seedAlumni(repo, "amina", "Kenya", "Nairobi", true)

	updated, err := svc.MakeAdmin(context.Background(), member.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)

	_, err = svc.MakeAdmin(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAlumniNotFound)
}

func TestAdminService_DashboardAlumni(t *testing.T) {
	svc, repo := newTestAdminService(t)
	ctx := context.Background()

	seedAlumni(repo, "amina", "Kenya", "Nairobi", true)
	seedAlumni(repo, "bruno", "Brazil", "Recife", false)

	// No status filter spans both approval states.
	all, err := svc.DashboardAlumni(ctx, &usecase.DashboardFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.DashboardAlumni(ctx, &usecase.DashboardFilter{Status: usecase.DashboardStatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.False(t, pending[0].IsApproved)

	approved, err := svc.DashboardAlumni(ctx, &usecase.DashboardFilter{Status: usecase.DashboardStatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.True(t, approved[0].IsApproved)
}

func TestAdminService_DashboardAlumniSortByName(t *testing.T) {
	svc, repo := newTestAdminService(t)

	seedAlumni(repo, "zuri", "Kenya", "Nairobi", true)
	seedAlumni(repo, "amina", "Kenya", "Nairobi", true)

	records, err := svc.DashboardAlumni(context.Background(), &usecase.DashboardFilter{SortBy: "name"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "amina", records[0].FirstName)
	assert.Equal(t, "zuri", records[1].FirstName)
}

func TestAdminService_DashboardStats(t *testing.T) {
	svc, repo := newTestAdminService(t)

	seedAlumni(repo, "amina", "Kenya", "Nairobi", true)
	seedAlumni(repo, "bruno", "Brazil", "Recife", false)
	admin := seedAlumni(repo, "carol", "Kenya", "Mombasa", true)
	_, err := svc.MakeAdmin(context.Background(), admin.ID)
	require.NoError(t, err)

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalAlumni)
	assert.Equal(t, int64(2), stats.ApprovedAlumni)
	assert.Equal(t, int64(1), stats.PendingAlumni)
	assert.Equal(t, int64(1), stats.AdminCount)
	assert.Equal(t, int64(4), stats.CompletedDonations)
	assert.InDelta(t, 1250.50, stats.TotalDonatedAmount, 0.001)
	assert.Equal(t, int64(2), stats.PendingDonations)
}
