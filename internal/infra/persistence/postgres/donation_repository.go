package postgres

import (
	"context"

	"alumnihub/internal/domain/entity"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// Totals aggregates completed count, completed amount sum, and pending count.
func (repo *donationRepository) Totals(ctx context.Context) (*repository.DonationTotals, error) {
	var completed struct {
		Count int64
		Sum   float64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS sum").
		Where("status = ?", string(entity.DonationCompleted)).
		Scan(&completed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate completed donations")
	}

	var pendingCount int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Where("status = ?", string(entity.DonationPending)).
		Count(&pendingCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count pending donations")
	}

	return &repository.DonationTotals{
		CompletedCount: completed.Count,
		CompletedSum:   completed.Sum,
		PendingCount:   pendingCount,
	}, nil
}

// ListByStatus returns donations in a given status, newest first.
func (repo *donationRepository) ListByStatus(ctx context.Context, status entity.DonationStatus) ([]*entity.Donation, error) {
	var donationModels []*model.DonationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&donationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donations by status")
	}

	donations := make([]*entity.Donation, 0, len(donationModels))
	for _, donationM := range donationModels {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, nil
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationModel to a domain Donation entity.
func toDonationDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:          data.ID,
		DonorName:   data.DonorName,
		DonorEmail:  data.DonorEmail,
		IsAnonymous: data.IsAnonymous,
		Amount:      data.Amount,
		Currency:    data.Currency,
		Method:      data.Method,
		Message:     data.Message,
		Status:      entity.DonationStatus(data.Status),
		AlumniID:    data.AlumniID,
		CreatedAt:   data.CreatedAt,
		CompletedAt: data.CompletedAt,
	}
}
