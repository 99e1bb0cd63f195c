// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GeoPoint is a GeoJSON-style point carried by every alumni record.
// Coordinates follow the GeoJSON order: longitude first, then latitude.
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates orb.Point `json:"coordinates"`
}

// NewGeoPoint builds a GeoPoint from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: orb.Point{lng, lat}}
}

// Alumni is the registration record of one person in the alumni network.
// PasswordHash is never serialized; only the authentication paths read it.
type Alumni struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"` // stored case-folded, globally unique
	PasswordHash string    `json:"-"`

	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`

	Department     string `json:"department,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
	RollNumber     string `json:"rollNumber,omitempty"`

	CurrentCompany string `json:"currentCompany,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`

	Country     string   `json:"country,omitempty"`
	City        string   `json:"city,omitempty"`
	FullAddress string   `json:"fullAddress,omitempty"`
	Location    GeoPoint `json:"location"`

	IsApproved bool `json:"isApproved"`
	IsAdmin    bool `json:"isAdmin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is the reduced view returned by register and login, enough for a
// client to route between the pending and the full experience.
type Summary struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	IsApproved bool      `json:"isApproved"`
	IsAdmin    bool      `json:"isAdmin"`
}

// Summarize projects the record down to its account summary.
func (a *Alumni) Summarize() Summary {
	return Summary{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Email:      a.Email,
		IsApproved: a.IsApproved,
		IsAdmin:    a.IsAdmin,
	}
}
