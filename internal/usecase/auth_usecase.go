// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"alumnihub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new alumni account.
// Only the first four fields are mandatory; the rest seed the profile.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string

	Phone    string
	LinkedIn string

	Department     string
	GraduationYear int
	RollNumber     string

	CurrentCompany string
	JobTitle       string

	Country     string
	City        string
	FullAddress string
	Longitude   float64
	Latitude    float64
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries a password change for an authenticated account.
type ChangePasswordInput struct {
	AlumniID        uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// VerifyCodeInput carries a reset-code check.
type VerifyCodeInput struct {
	Email string
	Code  string
}

// ResetPasswordInput completes the password-reset flow.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the session token and the account summary after a
// successful register or login.
type AuthOutput struct {
	Token  string
	Alumni entity.Summary
}

// AuthUsecase defines the authentication and account operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Profile(ctx context.Context, alumniID uuid.UUID) (*entity.Alumni, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, input *VerifyCodeInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
