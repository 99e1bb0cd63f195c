package usecase

import (
	"context"

	"alumnihub/internal/domain/entity"
	"alumnihub/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// DirectoryFilter narrows the public alumni listing.
type DirectoryFilter struct {
	Department     string
	GraduationYear int
	Country        string
	City           string
	Search         string
}

// UpdateProfileInput carries a profile patch plus the identity of the caller,
// so ownership can be enforced in one place.
type UpdateProfileInput struct {
	ActorID      uuid.UUID
	ActorIsAdmin bool
	TargetID     uuid.UUID
	Patch        repository.ProfilePatch
}

// --- Output DTOs ---

// DirectoryStats is the public stats block of the directory page.
type DirectoryStats struct {
	TotalAlumni          int64 `json:"totalAlumni"`
	CountriesRepresented int   `json:"countriesRepresented"`
	CitiesRepresented    int   `json:"citiesRepresented"`
	PendingApprovals     int64 `json:"pendingApprovals"`
}

// MapLocation is one pin on the world map.
type MapLocation struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Country        string          `json:"country"`
	City           string          `json:"city"`
	Location       entity.GeoPoint `json:"location"`
	CurrentCompany string          `json:"currentCompany,omitempty"`
	JobTitle       string          `json:"jobTitle,omitempty"`
}

// CityGroup collects the alumni of one city.
type CityGroup struct {
	City   string        `json:"city"`
	Count  int           `json:"count"`
	Alumni []MapLocation `json:"alumni"`
}

// CountryGroup collects the cities of one country.
type CountryGroup struct {
	Country string      `json:"country"`
	Total   int         `json:"total"`
	Cities  []CityGroup `json:"cities"`
}

// MapStats summarizes the map dataset. CitiesRepresented counts city groups
// per country and sums them, so the same city name in two countries counts
// twice.
type MapStats struct {
	TotalAlumni          int `json:"totalAlumni"`
	CountriesRepresented int `json:"countriesRepresented"`
	CitiesRepresented    int `json:"citiesRepresented"`
}

// MapData is the full payload of the map endpoint.
type MapData struct {
	Locations []MapLocation  `json:"locations"`
	ByCountry []CountryGroup `json:"byCountry"`
	Stats     MapStats       `json:"stats"`
}

// DirectoryUsecase defines the public directory operations plus the
// owner-or-admin profile update.
type DirectoryUsecase interface {
	ListAlumni(ctx context.Context, filter *DirectoryFilter) ([]*entity.Alumni, error)
	GetAlumni(ctx context.Context, alumniID uuid.UUID) (*entity.Alumni, error)
	Stats(ctx context.Context) (*DirectoryStats, error)
	MapData(ctx context.Context) (*MapData, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Alumni, error)
}
