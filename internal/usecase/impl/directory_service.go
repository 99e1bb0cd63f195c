package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "alumnihub/internal/delivery/context"
	"alumnihub/internal/domain/entity"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	alumniRepo repository.AlumniRepository
	logger     *slog.Logger
}

// DirectoryServiceParams holds dependencies for directoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	AlumniRepo repository.AlumniRepository
	Logger     *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		alumniRepo: params.AlumniRepo,
		logger:     params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func boolPtr(b bool) *bool {
	return &b
}

// ListAlumni returns approved accounts matching the filter.
func (srv *directoryService) ListAlumni(ctx context.Context, filter *usecase.DirectoryFilter) ([]*entity.Alumni, error) {
	records, err := srv.alumniRepo.List(ctx, repository.Filter{
		Approved:       boolPtr(true),
		Department:     filter.Department,
		GraduationYear: filter.GraduationYear,
		Country:        filter.Country,
		City:           filter.City,
		Search:         filter.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alumni directory")
	}

	return records, nil
}

// GetAlumni returns one approved account. Unapproved accounts are invisible
// here, indistinguishable from missing ones.
func (srv *directoryService) GetAlumni(ctx context.Context, alumniID uuid.UUID) (*entity.Alumni, error) {
	account, err := srv.alumniRepo.FindByID(ctx, alumniID)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return nil, domainerrors.ErrAlumniNotFound
		}

		return nil, errors.Wrap(err, "failed to load alumni record")
	}

	if !account.IsApproved {
		return nil, domainerrors.ErrAlumniNotFound
	}

	return account, nil
}

// Stats returns the public directory statistics.
func (srv *directoryService) Stats(ctx context.Context) (*usecase.DirectoryStats, error) {
	total, err := srv.alumniRepo.Count(ctx, boolPtr(true), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count approved alumni")
	}

	pending, err := srv.alumniRepo.Count(ctx, boolPtr(false), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending alumni")
	}

	countries, err := srv.alumniRepo.DistinctCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list distinct countries")
	}

	cities, err := srv.alumniRepo.DistinctCities(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list distinct cities")
	}

	return &usecase.DirectoryStats{
		TotalAlumni:          total,
		CountriesRepresented: len(countries),
		CitiesRepresented:    len(cities),
		PendingApprovals:     pending,
	}, nil
}

// MapData returns the world-map payload: the flat pin list, the
// country→city grouping and the summary stats.
func (srv *directoryService) MapData(ctx context.Context) (*usecase.MapData, error) {
	records, err := srv.alumniRepo.ListForMap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load map records")
	}

	locations := make([]usecase.MapLocation, 0, len(records))
	for _, record := range records {
		locations = append(locations, usecase.MapLocation{
			ID:             record.ID,
			Name:           record.FirstName + " " + record.LastName,
			Country:        record.Country,
			City:           record.City,
			Location:       record.Location,
			CurrentCompany: record.CurrentCompany,
			JobTitle:       record.JobTitle,
		})
	}

	byCountry := groupByCountry(locations)

	citiesRepresented := 0
	for _, group := range byCountry {
		citiesRepresented += len(group.Cities)
	}

	return &usecase.MapData{
		Locations: locations,
		ByCountry: byCountry,
		Stats: usecase.MapStats{
			TotalAlumni:          len(locations),
			CountriesRepresented: len(byCountry),
			// Summed per country, so a city name shared by two countries
			// counts once for each.
			CitiesRepresented: citiesRepresented,
		},
	}, nil
}

// groupByCountry builds the two-level country→city grouping with
// alphabetical ordering at both levels.
func groupByCountry(locations []usecase.MapLocation) []usecase.CountryGroup {
	type cityBucket map[string][]usecase.MapLocation

	countries := make(map[string]cityBucket)
	for _, location := range locations {
		bucket, ok := countries[location.Country]
		if !ok {
			bucket = make(cityBucket)
			countries[location.Country] = bucket
		}
		bucket[location.City] = append(bucket[location.City], location)
	}

	countryNames := make([]string, 0, len(countries))
	for name := range countries {
		countryNames = append(countryNames, name)
	}
	sort.Strings(countryNames)

	groups := make([]usecase.CountryGroup, 0, len(countryNames))
	for _, countryName := range countryNames {
		bucket := countries[countryName]

		cityNames := make([]string, 0, len(bucket))
		for name := range bucket {
			cityNames = append(cityNames, name)
		}
		sort.Strings(cityNames)

		group := usecase.CountryGroup{
			Country: countryName,
			Cities:  make([]usecase.CityGroup, 0, len(cityNames)),
		}
		for _, cityName := range cityNames {
			members := bucket[cityName]
			group.Cities = append(group.Cities, usecase.CityGroup{
				City:   cityName,
				Count:  len(members),
				Alumni: members,
			})
			group.Total += len(members)
		}

		groups = append(groups, group)
	}

	return groups
}

// UpdateProfile applies a typed patch after the owner-or-admin check.
func (srv *directoryService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Alumni, error) {
	if input.ActorID != input.TargetID && !input.ActorIsAdmin {
		srv.log(ctx).Warn("Profile update denied",
			slog.Any("actorID", input.ActorID),
			slog.Any("targetID", input.TargetID),
		)

		return nil, domainerrors.ErrNotProfileOwner
	}

	updated, err := srv.alumniRepo.ApplyPatch(ctx, input.TargetID, input.Patch)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return nil, domainerrors.ErrAlumniNotFound
		}

		return nil, errors.Wrap(err, "failed to apply profile patch")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("alumniID", updated.ID))

	return updated, nil
}
