// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"alumnihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrAlumniNotFound is a domain-specific error returned when no record matches.
var ErrAlumniNotFound = errors.New("alumni not found")

// ErrDuplicateEmail is returned by Create when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// Sort selects the ordering of admin listings.
type Sort string

const (
	SortNewest Sort = ""      // createdAt descending (default)
	SortName   Sort = "name"  // firstName, lastName ascending
	SortEmail  Sort = "email" // email ascending
	SortYear   Sort = "year"  // graduationYear descending
)

// Filter narrows alumni listings. Zero values mean "no constraint".
// Approved distinguishes unset (nil) from explicit true/false so the same
// filter serves the public directory and the admin dashboard.
type Filter struct {
	Approved       *bool
	Department     string
	GraduationYear int
	Country        string
	City           string
	Search         string // case-insensitive substring over names, email, employer
	SortBy         Sort
}

// ProfilePatch carries the mutable profile fields as explicit optionals.
// Email, the password hash, and the status flags are not representable here,
// so the update path cannot touch them by construction.
type ProfilePatch struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	LinkedIn       *string
	Department     *string
	GraduationYear *int
	RollNumber     *string
	CurrentCompany *string
	JobTitle       *string
	Country        *string
	City           *string
	FullAddress    *string
	Coordinates    *orb.Point // lng, lat
}

// IsEmpty reports whether the patch would change nothing.
func (p *ProfilePatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Phone == nil &&
		p.LinkedIn == nil && p.Department == nil && p.GraduationYear == nil &&
		p.RollNumber == nil && p.CurrentCompany == nil && p.JobTitle == nil &&
		p.Country == nil && p.City == nil && p.FullAddress == nil &&
		p.Coordinates == nil
}

// AlumniRepository defines the standard operations for alumni persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type AlumniRepository interface {
	// Create persists a new record. Returns ErrDuplicateEmail when the
	// case-folded email is already present.
	Create(ctx context.Context, alumni *entity.Alumni) error

	// FindByID retrieves a single record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Alumni, error)

	// FindByEmail retrieves a single record by case-folded email.
	FindByEmail(ctx context.Context, email string) (*entity.Alumni, error)

	// List returns the records matching the filter.
	List(ctx context.Context, filter Filter) ([]*entity.Alumni, error)

	// ListForMap returns approved records that carry both country and city.
	ListForMap(ctx context.Context) ([]*entity.Alumni, error)

	// ApplyPatch applies the profile patch and returns the updated record.
	ApplyPatch(ctx context.Context, id uuid.UUID, patch ProfilePatch) (*entity.Alumni, error)

	// UpdatePassword replaces the stored credential hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// SetApproval flips the approval flag and returns the updated record.
	// Privileged: only the admin service calls this.
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Alumni, error)

	// SetAdmin flips the admin flag and returns the updated record.
	// Privileged: only the admin service calls this.
	SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) (*entity.Alumni, error)

	// Delete removes the record permanently. Privileged; used by reject.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of records, optionally filtered by approval
	// or admin flag (nil means "any").
	Count(ctx context.Context, approved, isAdmin *bool) (int64, error)

	// DistinctCountries returns distinct non-empty countries over approved records.
	DistinctCountries(ctx context.Context) ([]string, error)

	// DistinctCities returns distinct non-empty cities over approved records.
	DistinctCities(ctx context.Context) ([]string, error)
}
