// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"alumnihub/config"
	deliverycontext "alumnihub/internal/delivery/context"
	"alumnihub/internal/domain/entity"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/domain/service"
	"alumnihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinPasswordLength = 6
	resetCodeTTL             = 10 * time.Minute
)

// authService implements the AuthUsecase interface.
type authService struct {
	alumniRepo        repository.AlumniRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	codeStore         service.CodeStore
	minPasswordLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AlumniRepo   repository.AlumniRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	CodeStore    service.CodeStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	minLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &authService{
		alumniRepo:        params.AlumniRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		codeStore:         params.CodeStore,
		minPasswordLength: minLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// foldEmail canonicalizes an email for storage and lookup.
func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// errPasswordTooShort carries the configured minimum in the message.
func (srv *authService) errPasswordTooShort() error {
	return domainerrors.ErrPasswordTooShort.WithMessage(
		fmt.Sprintf("Password must be at least %d characters", srv.minPasswordLength))
}

// Register creates a new unapproved account and opens a session for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidation.WithMessage("First name, last name, email and password are required")
	}
	if len(input.Password) < srv.minPasswordLength {
		return nil, srv.errPasswordTooShort()
	}

	email := foldEmail(input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newAlumni := &entity.Alumni{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          email,
		PasswordHash:   hashedPassword,
		Phone:          input.Phone,
		LinkedIn:       input.LinkedIn,
		Department:     input.Department,
		GraduationYear: input.GraduationYear,
		RollNumber:     input.RollNumber,
		CurrentCompany: input.CurrentCompany,
		JobTitle:       input.JobTitle,
		Country:        input.Country,
		City:           input.City,
		FullAddress:    input.FullAddress,
		Location:       entity.NewGeoPoint(input.Longitude, input.Latitude),
		// New accounts wait for moderation.
		IsApproved: false,
		IsAdmin:    false,
	}

	if err := srv.alumniRepo.Create(ctx, newAlumni); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration with taken email", slog.String("email", email))

			return nil, domainerrors.ErrEmailTaken
		}

		srv.log(ctx).Error("Failed to create alumni during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create alumni during registration")
	}

	token, err := srv.tokenService.Issue(newAlumni.ID, newAlumni.Email, newAlumni.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token after registration")
	}

	srv.log(ctx).Info("Alumni registered", slog.Any("alumniID", newAlumni.ID), slog.String("email", email))

	return &usecase.AuthOutput{Token: token, Alumni: newAlumni.Summarize()}, nil
}

// Login verifies credentials and opens a session. Unapproved accounts may
// log in; the summary carries the approval flag so the client can route
// them to the pending page.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Email and password are required")
	}

	email := foldEmail(input.Email)

	account, err := srv.alumniRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account during login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(account.ID, account.Email, account.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token during login")
	}

	srv.log(ctx).Debug("Alumni logged in", slog.Any("alumniID", account.ID))

	return &usecase.AuthOutput{Token: token, Alumni: account.Summarize()}, nil
}

// Profile returns the caller's own record.
func (srv *authService) Profile(ctx context.Context, alumniID uuid.UUID) (*entity.Alumni, error) {
	account, err := srv.alumniRepo.FindByID(ctx, alumniID)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return nil, domainerrors.ErrAlumniNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return account, nil
}

// ChangePassword re-authenticates with the current password before storing a
// new hash.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domainerrors.ErrValidation.WithMessage("Current and new password are required")
	}
	if len(input.NewPassword) < srv.minPasswordLength {
		return srv.errPasswordTooShort()
	}

	account, err := srv.alumniRepo.FindByID(ctx, input.AlumniID)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			return domainerrors.ErrAlumniNotFound
		}

		return errors.Wrap(err, "failed to load account for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Password change with wrong current password", slog.Any("alumniID", account.ID))

		return domainerrors.ErrWrongPassword
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.alumniRepo.UpdatePassword(ctx, account.ID, newHash); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("alumniID", account.ID))

	return nil
}

// ForgotPassword generates a reset code for a known account. There is no
// mail delivery; the code is written to the log for the operator to relay.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return domainerrors.ErrValidation.WithMessage("Email is required")
	}

	email = foldEmail(email)

	if _, err := srv.alumniRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			// Deliberately reveals whether the email is registered; the
			// frontend shows "no account for this email" on purpose.
			return domainerrors.ErrAlumniNotFound.WithMessage("No account found with this email")
		}

		return errors.Wrap(err, "failed to look up account for password reset")
	}

	code, err := generateResetCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	if err := srv.codeStore.Put(ctx, email, code, resetCodeTTL); err != nil {
		return errors.Wrap(err, "failed to store reset code")
	}

	srv.log(ctx).Info("Password reset code generated",
		slog.String("email", email),
		slog.String("code", code),
		slog.Duration("ttl", resetCodeTTL),
	)

	return nil
}

// VerifyResetCode checks a reset code without consuming it, so the client
// can gate the new-password form before submitting.
func (srv *authService) VerifyResetCode(ctx context.Context, input *usecase.VerifyCodeInput) error {
	if input.Email == "" || input.Code == "" {
		return domainerrors.ErrValidation.WithMessage("Email and OTP are required")
	}

	return srv.checkResetCode(ctx, foldEmail(input.Email), input.Code)
}

// ResetPassword re-validates the code, stores the new password and consumes
// the code.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.Email == "" || input.Code == "" || input.NewPassword == "" {
		return domainerrors.ErrValidation.WithMessage("Email, OTP and new password are required")
	}
	if len(input.NewPassword) < srv.minPasswordLength {
		return srv.errPasswordTooShort()
	}

	email := foldEmail(input.Email)

	if err := srv.checkResetCode(ctx, email, input.Code); err != nil {
		return err
	}

	account, err := srv.alumniRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAlumniNotFound) {
			// The account was deleted between requesting the code and using it.
			return domainerrors.ErrAlumniNotFound
		}

		return errors.Wrap(err, "failed to load account for password reset")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash reset password")
	}

	if err := srv.alumniRepo.UpdatePassword(ctx, account.ID, newHash); err != nil {
		return errors.Wrap(err, "failed to store reset password")
	}

	if err := srv.codeStore.Delete(ctx, email); err != nil {
		// The password is already changed; a lingering code only allows a
		// second reset within the TTL, so log and move on.
		srv.log(ctx).Warn("Failed to delete consumed reset code", slog.String("email", email), slog.Any("error", err))
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("alumniID", account.ID))

	return nil
}

func (srv *authService) checkResetCode(ctx context.Context, email, code string) error {
	stored, err := srv.codeStore.Get(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCodeExpired):
			return domainerrors.ErrCodeExpired
		case errors.Is(err, service.ErrCodeNotFound):
			return domainerrors.ErrCodeNotFound
		default:
			return errors.Wrap(err, "failed to read reset code")
		}
	}

	if stored != code {
		return domainerrors.ErrCodeMismatch
	}

	return nil
}

// generateResetCode returns a random six-digit code.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
