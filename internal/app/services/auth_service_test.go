package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	svc      *AuthService
	users    *fakeUserRepo
	admins   *fakeBranchAdminRepo
	branches *fakeBranchRepo
	settings *fakeBranchSettingRepo
	email    *fakeEmailService
}

func newAuthServiceFixture() *authServiceFixture {
	users := newFakeUserRepo()
	admins := newFakeBranchAdminRepo(users)
	branches := newFakeBranchRepo()
	settings := newFakeBranchSettingRepo()
	emailSvc := &fakeEmailService{}
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenIssuer: "maktab.test"})

	svc := NewAuthService(users, admins, branches, settings, jwtSvc, emailSvc, zerolog.Nop())
	return &authServiceFixture{
		svc:      svc,
		users:    users,
		admins:   admins,
		branches: branches,
		settings: settings,
		email:    emailSvc,
	}
}

func (f *authServiceFixture) registerSuperAdmin(t *testing.T) *models.PublicUser {
	t.Helper()
	user, err := f.svc.RegisterSuperAdmin(context.Background(), &dto.RegisterSuperAdminRequest{
		Username: "admin",
		Password: "secret123",
		Email:    "admin@school.pk",
		UserRole: "Super Admin",
	})
	require.NoError(t, err)
	return user
}

func (f *authServiceFixture) registerBranchAdmin(t *testing.T, email string) *dto.RegisterBranchAdminResponse {
	t.Helper()
	resp, err := f.svc.RegisterBranchAdmin(context.Background(), &dto.RegisterBranchAdminRequest{
		Username:    "branchadmin",
		Password:    "secret123",
		Email:       email,
		UserRole:    "Branch Admin",
		FullName:    "Ayesha Malik",
		CnicNumber:  "35202-1234567-1",
		PhoneNumber: "0300-1234567",
		Address:     "12 Mall Road, Lahore",
		Salary:      90000,
		Gender:      "Female",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterSuperAdminAndLogin(t *testing.T) {
	f := newAuthServiceFixture()
	created := f.registerSuperAdmin(t)
	assert.Equal(t, models.RoleSuperAdmin, created.UserRole)

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@school.pk",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, created.ID, resp.User.ID)
	// Super admin has no role context resolver.
	assert.Nil(t, resp.Context)
}

func TestRegisterSuperAdminDuplicateEmail(t *testing.T) {
	f := newAuthServiceFixture()
	f.registerSuperAdmin(t)

	_, err := f.svc.RegisterSuperAdmin(context.Background(), &dto.RegisterSuperAdminRequest{
		Username: "admin2",
		Password: "secret123",
		Email:    "admin@school.pk",
		UserRole: "Super Admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newAuthServiceFixture()
	f.registerSuperAdmin(t)

	_, wrongPassword := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@school.pk",
		Password: "wrong-password",
	})
	_, unknownEmail := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@school.pk",
		Password: "secret123",
	})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	// An attacker probing for accounts must see the same message either way.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginMissingFieldsListsAll(t *testing.T) {
	f := newAuthServiceFixture()

	_, err := f.svc.Login(context.Background(), &dto.LoginRequest{})
	require.Error(t, err)
	assert.Equal(t, "Missing fields: email, password", err.Error())
}

func TestRegisterBranchAdminMissingFieldsListsAll(t *testing.T) {
	f := newAuthServiceFixture()

	_, err := f.svc.RegisterBranchAdmin(context.Background(), &dto.RegisterBranchAdminRequest{
		Username:    "branchadmin",
		Email:       "ba@school.pk",
		UserRole:    "Branch Admin",
		FullName:    "Ayesha Malik",
		CnicNumber:  "35202-1234567-1",
		PhoneNumber: "0300-1234567",
		Address:     "12 Mall Road, Lahore",
		Salary:      90000,
	})
	require.Error(t, err)
	assert.Equal(t, "Missing fields: gender, password", err.Error())
}

func TestRegisterBranchAdminRequiresSalary(t *testing.T) {
	f := newAuthServiceFixture()

	_, err := f.svc.RegisterBranchAdmin(context.Background(), &dto.RegisterBranchAdminRequest{
		Username:    "branchadmin",
		Password:    "secret123",
		Email:       "ba@school.pk",
		UserRole:    "Branch Admin",
		FullName:    "Ayesha Malik",
		CnicNumber:  "35202-1234567-1",
		PhoneNumber: "0300-1234567",
		Address:     "12 Mall Road, Lahore",
		Gender:      "Female",
	})
	require.Error(t, err)
	assert.Equal(t, "Missing fields: salary", err.Error())
}

func TestLoginBranchAdminContextUnassigned(t *testing.T) {
	f := newAuthServiceFixture()
	f.registerBranchAdmin(t, "ba@school.pk")

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ba@school.pk",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Context)

	// Keys are present even when unassigned; clients rely on explicit nulls.
	assert.NotNil(t, resp.Context["branchAdmin"])
	assert.Contains(t, resp.Context, "branchId")
	assert.Nil(t, resp.Context["branchId"])
	assert.Contains(t, resp.Context, "branch")
	assert.Nil(t, resp.Context["branch"])
	assert.Contains(t, resp.Context, "branchSetting")
	assert.Nil(t, resp.Context["branchSetting"])
}

func TestLoginBranchAdminContextAssigned(t *testing.T) {
	f := newAuthServiceFixture()
	reg := f.registerBranchAdmin(t, "ba@school.pk")

	branch := &models.Branch{
		BranchName: "Gulberg Campus",
		BranchType: "School",
		AssignedTo: &reg.BranchAdmin.ID,
	}
	require.NoError(t, f.branches.Create(context.Background(), branch))
	require.NoError(t, f.settings.Upsert(context.Background(), &models.BranchSetting{
		BranchID:  branch.ID,
		StartTime: "08:00",
		EndTime:   "14:00",
		Diary:     true,
	}))

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ba@school.pk",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Context)

	assert.Equal(t, branch.ID, resp.Context["branchId"])
	gotBranch, ok := resp.Context["branch"].(*models.Branch)
	require.True(t, ok)
	assert.Equal(t, "Gulberg Campus", gotBranch.BranchName)
	gotSetting, ok := resp.Context["branchSetting"].(*models.BranchSetting)
	require.True(t, ok)
	assert.True(t, gotSetting.Diary)
}

func TestSwitchSessionToBranchAdminAndBack(t *testing.T) {
	f := newAuthServiceFixture()
	superAdmin := f.registerSuperAdmin(t)
	reg := f.registerBranchAdmin(t, "ba@school.pk")

	resp, err := f.svc.SwitchSession(context.Background(), &dto.SwitchSessionRequest{
		BranchAdminID: strconv.FormatInt(reg.User.ID, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)
	assert.Equal(t, models.RoleBranchAdmin, resp.User.UserRole)
	assert.NotEmpty(t, resp.Token)

	back, err := f.svc.SwitchSession(context.Background(), &dto.SwitchSessionRequest{
		BranchAdminID: "Super Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, superAdmin.ID, back.User.ID)
	assert.Equal(t, models.RoleSuperAdmin, back.User.UserRole)
}

func TestSwitchSessionRejectsNonBranchAdminAccount(t *testing.T) {
	f := newAuthServiceFixture()
	superAdmin := f.registerSuperAdmin(t)
	f.registerBranchAdmin(t, "ba@school.pk")

	// The super admin's own account id must not resolve, even when a branch
	// admin profile happens to carry the same number.
	_, err := f.svc.SwitchSession(context.Background(), &dto.SwitchSessionRequest{
		BranchAdminID: strconv.FormatInt(superAdmin.ID, 10),
	})
	assert.ErrorIs(t, err, apperrors.ErrBranchAdminNotFound)
}

func TestSwitchSessionUnknownAdmin(t *testing.T) {
	f := newAuthServiceFixture()
	f.registerSuperAdmin(t)

	_, err := f.svc.SwitchSession(context.Background(), &dto.SwitchSessionRequest{
		BranchAdminID: "999",
	})
	assert.ErrorIs(t, err, apperrors.ErrBranchAdminNotFound)

	_, err = f.svc.SwitchSession(context.Background(), &dto.SwitchSessionRequest{
		BranchAdminID: "not-a-number",
	})
	assert.ErrorIs(t, err, apperrors.ErrBranchAdminNotFound)
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newAuthServiceFixture()
	f.registerSuperAdmin(t)

	err := f.svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "admin@school.pk"})
	require.NoError(t, err)
	require.NotEmpty(t, f.email.lastToken)
	assert.Equal(t, "admin@school.pk", f.email.lastEmail)

	token := f.email.lastToken
	err = f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)

	// Old password rejected, new one accepted.
	_, err = f.svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@school.pk", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = f.svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@school.pk", Password: "brand-new-pass"})
	assert.NoError(t, err)

	// The token was cleared on use; redeeming it again fails.
	err = f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "yet-another-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestResetPasswordWithoutOutstandingRequest(t *testing.T) {
	f := newAuthServiceFixture()
	admin := f.registerSuperAdmin(t)

	// A validly signed token is not enough: it must also match the token
	// stored by a forgot-password request.
	jwtSvc := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenIssuer: "maktab.test"})
	token, err := jwtSvc.GenerateResetToken(admin.ID)
	require.NoError(t, err)

	err = f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := newAuthServiceFixture()
	admin := f.registerSuperAdmin(t)

	// Sign a token whose three-hour window has already passed and store it
	// on the account, so only the expiry check can reject it.
	issued := time.Now().Add(-4 * time.Hour)
	claims := &auth.ResetClaims{
		UserID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(auth.ResetTokenExp)),
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			Issuer:    "maktab.test",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, f.users.SetResetToken(context.Background(), admin.ID, token))

	err = f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestResetPasswordGarbageToken(t *testing.T) {
	f := newAuthServiceFixture()
	f.registerSuperAdmin(t)

	err := f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       "not-a-valid-token",
		NewPassword: "whatever123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	f := newAuthServiceFixture()

	err := f.svc.ForgotPassword(context.Background(), &dto.ForgotPasswordRequest{Email: "nobody@school.pk"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
