package impl

import (
	"context"
	"testing"

	"alumnihub/config"
	domainerrors "alumnihub/internal/domain/errors"
	"alumnihub/internal/domain/service"
	"alumnihub/internal/infra/otp"
	"alumnihub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, *fakeAlumniRepo, service.CodeStore) {
	t.Helper()

	repo := newFakeAlumniRepo()
	store := otp.NewMemoryStore()
	svc := NewAuthService(AuthServiceParams{
		AlumniRepo:   repo,
		Hasher:       fakeHasher{},
		TokenService: fakeTokenService{},
		CodeStore:    store,
		Config:       &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 6}},
		Logger:       discardLogger(),
	})

	return svc, repo, store
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Mwangi",
		Email:     "Jane@Example.com",
		Password:  "hunter22",
		Country:   "Kenya",
		City:      "Nairobi",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	out, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	// Email is stored case-folded and the account starts unapproved.
	assert.Equal(t, "jane@example.com", out.Alumni.Email)
	assert.False(t, out.Alumni.IsApproved)
	assert.False(t, out.Alumni.IsAdmin)

	stored, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:hunter22", stored.PasswordHash)
	assert.Equal(t, "Kenya", stored.Country)
}

func TestAuthService_ShortPasswordMessageUsesConfiguredMinimum(t *testing.T) {
	svc := NewAuthService(AuthServiceParams{
		AlumniRepo:   newFakeAlumniRepo(),
		Hasher:       fakeHasher{},
		TokenService: fakeTokenService{},
		CodeStore:    otp.NewMemoryStore(),
		Config:       &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 10}},
		Logger:       discardLogger(),
	})

	input := registerInput()
	input.Password = "ninechars"

	_, err := svc.Register(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Password must be at least 10 characters", appErr.Message())
}

func TestAuthService_RegisterMissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	input := registerInput()
	input.Email = ""

	_, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestAuthService_RegisterShortPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	input := registerInput()
	input.Password = "tiny"

	_, err := svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	// Same address with different casing is still a duplicate.
	input := registerInput()
	input.Email = "JANE@example.COM"

	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	// Unapproved accounts log in; the flag tells the client where to route.
	assert.False(t, out.Alumni.IsApproved)
}

func TestAuthService_LoginUniformFailure(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	// Unknown email and wrong password fail identically.
	_, unknownErr := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	_, wrongErr := svc.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	out, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AlumniID:        out.Alumni.ID,
		CurrentPassword: "wrong",
		NewPassword:     "brand-new-pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWrongPassword)

	err = svc.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AlumniID:        out.Alumni.ID,
		CurrentPassword: "hunter22",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)

	err = svc.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AlumniID:        out.Alumni.ID,
		CurrentPassword: "hunter22",
		NewPassword:     "brand-new-pass",
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, out.Alumni.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:brand-new-pass", stored.PasswordHash)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	svc, _, store := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	// Unknown email is reported, not hidden.
	err = svc.ForgotPassword(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrAlumniNotFound)

	require.NoError(t, svc.ForgotPassword(ctx, "Jane@Example.com"))

	code, err := store.Get(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestAuthService_VerifyResetCode(t *testing.T) {
	svc, _, store := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "jane@example.com"))

	code, err := store.Get(ctx, "jane@example.com")
	require.NoError(t, err)

	err = svc.VerifyResetCode(ctx, &usecase.VerifyCodeInput{Email: "other@example.com", Code: code})
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)

	err = svc.VerifyResetCode(ctx, &usecase.VerifyCodeInput{Email: "jane@example.com", Code: "000000"})
	assert.ErrorIs(t, err, domainerrors.ErrCodeMismatch)

	require.NoError(t, svc.VerifyResetCode(ctx, &usecase.VerifyCodeInput{Email: "jane@example.com", Code: code}))

	// Verification does not consume the code.
	require.NoError(t, svc.VerifyResetCode(ctx, &usecase.VerifyCodeInput{Email: "jane@example.com", Code: code}))
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, repo, store := newTestAuthService(t)
	ctx := context.Background()

	out, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "jane@example.com"))

	code, err := store.Get(ctx, "jane@example.com")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "jane@example.com",
		Code:        code,
		NewPassword: "fresh-password",
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, out.Alumni.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:fresh-password", stored.PasswordHash)

	// The reset consumed the code.
	err = svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "jane@example.com",
		Code:        code,
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCodeNotFound)
}

func TestAuthService_Profile(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	out, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, out.Alumni.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", profile.Email)

	require.NoError(t, repo.Delete(ctx, out.Alumni.ID))

	_, err = svc.Profile(ctx, out.Alumni.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlumniNotFound)
}
