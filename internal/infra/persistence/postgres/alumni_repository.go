package postgres

import (
	"context"

	"alumnihub/internal/domain/entity"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// alumniRepository implements the repository.AlumniRepository interface.
type alumniRepository struct {
	db *gorm.DB
}

// NewAlumniRepository is the constructor for alumniRepository.
func NewAlumniRepository(db *gorm.DB) repository.AlumniRepository {
	return &alumniRepository{
		db: db,
	}
}

// Create persists a new alumni record.
func (repo *alumniRepository) Create(ctx context.Context, alumni *entity.Alumni) error {
	alumniM := fromAlumniDomain(alumni)

	if err := repo.db.WithContext(ctx).Create(alumniM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required registration fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alumni")
	}

	// Update the entity with generated values
	alumni.ID = alumniM.ID
	alumni.CreatedAt = alumniM.CreatedAt
	alumni.UpdatedAt = alumniM.UpdatedAt

	return nil
}

// FindByID retrieves an alumni record by its unique ID.
func (repo *alumniRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Alumni, error) {
	var alumniM model.AlumniModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alumniM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlumniNotFound
		}

		return nil, errors.Wrap(err, "failed to find alumni by ID")
	}

	return toAlumniDomain(&alumniM), nil
}

// FindByEmail retrieves an alumni record by its case-folded email.
func (repo *alumniRepository) FindByEmail(ctx context.Context, email string) (*entity.Alumni, error) {
	var alumniM model.AlumniModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&alumniM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlumniNotFound
		}

		return nil, errors.Wrap(err, "failed to find alumni by email")
	}

	return toAlumniDomain(&alumniM), nil
}

// List returns the alumni records matching the filter.
func (repo *alumniRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.Alumni, error) {
	var alumniModels []*model.AlumniModel

	query := repo.applyFilter(repo.db.WithContext(ctx), filter)
	query = repo.applySort(query, filter.SortBy)

	if err := query.Find(&alumniModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alumni")
	}

	return toAlumniDomainSlice(alumniModels), nil
}

// ListForMap returns approved records that carry both country and city.
func (repo *alumniRepository) ListForMap(ctx context.Context) ([]*entity.Alumni, error) {
	var alumniModels []*model.AlumniModel

	if err := repo.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Where("country <> '' AND city <> ''").
		Find(&alumniModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alumni for map")
	}

	return toAlumniDomainSlice(alumniModels), nil
}

// ApplyPatch updates the profile columns named by the patch and returns the
// fresh record. Columns outside the patch type cannot be touched here.
func (repo *alumniRepository) ApplyPatch(ctx context.Context, id uuid.UUID, patch repository.ProfilePatch) (*entity.Alumni, error) {
	updates := patchColumns(patch)
	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.AlumniModel{}).
			Where("id = ?", id).
			Updates(updates)

		if result.Error != nil {
			return nil, errors.Wrap(result.Error, "failed to update alumni profile")
		}

		if result.RowsAffected == 0 {
			return nil, repository.ErrAlumniNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// UpdatePassword replaces the stored credential hash.
func (repo *alumniRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlumniModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlumniNotFound
	}

	return nil
}

// SetApproval flips the approval flag and returns the updated record.
func (repo *alumniRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Alumni, error) {
	return repo.setFlag(ctx, id, "is_approved", approved)
}

// SetAdmin flips the admin flag and returns the updated record.
func (repo *alumniRepository) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) (*entity.Alumni, error) {
	return repo.setFlag(ctx, id, "is_admin", isAdmin)
}

func (repo *alumniRepository) setFlag(ctx context.Context, id uuid.UUID, column string, value bool) (*entity.Alumni, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AlumniModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update %s", column)
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrAlumniNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the record permanently.
func (repo *alumniRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AlumniModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete alumni")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlumniNotFound
	}

	return nil
}

// Count returns the number of records matching the optional flags.
func (repo *alumniRepository) Count(ctx context.Context, approved, isAdmin *bool) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AlumniModel{})
	if approved != nil {
		query = query.Where("is_approved = ?", *approved)
	}
	if isAdmin != nil {
		query = query.Where("is_admin = ?", *isAdmin)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count alumni")
	}

	return count, nil
}

// DistinctCountries returns distinct non-empty countries over approved records.
func (repo *alumniRepository) DistinctCountries(ctx context.Context) ([]string, error) {
	return repo.distinctColumn(ctx, "country")
}

// DistinctCities returns distinct non-empty cities over approved records.
func (repo *alumniRepository) DistinctCities(ctx context.Context) ([]string, error) {
	return repo.distinctColumn(ctx, "city")
}

func (repo *alumniRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	var values []string

	if err := repo.db.WithContext(ctx).
		Model(&model.AlumniModel{}).
		Where("is_approved = ?", true).
		Where(column+" <> ''").
		Distinct().
		Pluck(column, &values).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list distinct %s", column)
	}

	return values, nil
}

// --- Query builders ---

func (repo *alumniRepository) applyFilter(query *gorm.DB, filter repository.Filter) *gorm.DB {
	if filter.Approved != nil {
		query = query.Where("is_approved = ?", *filter.Approved)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.GraduationYear != 0 {
		query = query.Where("graduation_year = ?", filter.GraduationYear)
	}
	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR current_company ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	return query
}

func (repo *alumniRepository) applySort(query *gorm.DB, sortBy repository.Sort) *gorm.DB {
	switch sortBy {
	case repository.SortName:
		return query.Order("first_name ASC, last_name ASC")
	case repository.SortEmail:
		return query.Order("email ASC")
	case repository.SortYear:
		return query.Order("graduation_year DESC")
	default:
		return query.Order("created_at DESC")
	}
}

// patchColumns turns the typed patch into named column updates. The map keys
// are literal column names, never caller input.
func patchColumns(patch repository.ProfilePatch) map[string]any {
	updates := make(map[string]any)

	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.LinkedIn != nil {
		updates["linked_in"] = *patch.LinkedIn
	}
	if patch.Department != nil {
		updates["department"] = *patch.Department
	}
	if patch.GraduationYear != nil {
		updates["graduation_year"] = *patch.GraduationYear
	}
	if patch.RollNumber != nil {
		updates["roll_number"] = *patch.RollNumber
	}
	if patch.CurrentCompany != nil {
		updates["current_company"] = *patch.CurrentCompany
	}
	if patch.JobTitle != nil {
		updates["job_title"] = *patch.JobTitle
	}
	if patch.Country != nil {
		updates["country"] = *patch.Country
	}
	if patch.City != nil {
		updates["city"] = *patch.City
	}
	if patch.FullAddress != nil {
		updates["full_address"] = *patch.FullAddress
	}
	if patch.Coordinates != nil {
		updates["longitude"] = patch.Coordinates.Lon()
		updates["latitude"] = patch.Coordinates.Lat()
	}

	return updates
}

// --- Mapper Functions ---

// toAlumniDomain converts a GORM AlumniModel to a domain Alumni entity.
func toAlumniDomain(data *model.AlumniModel) *entity.Alumni {
	if data == nil {
		return nil
	}

	return &entity.Alumni{
		ID:             data.ID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Phone:          data.Phone,
		LinkedIn:       data.LinkedIn,
		Department:     data.Department,
		GraduationYear: data.GraduationYear,
		RollNumber:     data.RollNumber,
		CurrentCompany: data.CurrentCompany,
		JobTitle:       data.JobTitle,
		Country:        data.Country,
		City:           data.City,
		FullAddress:    data.FullAddress,
		Location:       entity.NewGeoPoint(data.Longitude, data.Latitude),
		IsApproved:     data.IsApproved,
		IsAdmin:        data.IsAdmin,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toAlumniDomainSlice(models []*model.AlumniModel) []*entity.Alumni {
	records := make([]*entity.Alumni, 0, len(models))
	for _, alumniM := range models {
		records = append(records, toAlumniDomain(alumniM))
	}

	return records
}

// fromAlumniDomain converts a domain Alumni entity to a GORM AlumniModel.
func fromAlumniDomain(data *entity.Alumni) *model.AlumniModel {
	if data == nil {
		return nil
	}

	coords := data.Location.Coordinates

	return &model.AlumniModel{
		ID:             data.ID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Phone:          data.Phone,
		LinkedIn:       data.LinkedIn,
		Department:     data.Department,
		GraduationYear: data.GraduationYear,
		RollNumber:     data.RollNumber,
		CurrentCompany: data.CurrentCompany,
		JobTitle:       data.JobTitle,
		Country:        data.Country,
		City:           data.City,
		FullAddress:    data.FullAddress,
		Longitude:      coords.Lon(),
		Latitude:       coords.Lat(),
		IsApproved:     data.IsApproved,
		IsAdmin:        data.IsAdmin,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
