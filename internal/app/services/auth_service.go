package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/repositories"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/auth"
	"github.com/hamzak/maktab/internal/pkg/email"
	"github.com/hamzak/maktab/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// AuthService handles authentication, registration and the password
// reset flow.
type AuthService struct {
	userRepo        repositories.IUserRepository
	branchAdminRepo repositories.IBranchAdminRepository
	jwtService      *auth.JWTService
	emailService    email.EmailService
	contextRegistry roleContextRegistry
	logger          zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	branchAdminRepo repositories.IBranchAdminRepository,
	branchRepo repositories.IBranchRepository,
	settingRepo repositories.IBranchSettingRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) *AuthService {
	registry := roleContextRegistry{
		models.RoleBranchAdmin: newBranchAdminContextResolver(branchAdminRepo, branchRepo, settingRepo, logger),
	}
	return &AuthService{
		userRepo:        userRepo,
		branchAdminRepo: branchAdminRepo,
		jwtService:      jwtService,
		emailService:    emailService,
		contextRegistry: registry,
		logger:          logger,
	}
}

// RegisterSuperAdmin creates a super admin account.
func (s *AuthService) RegisterSuperAdmin(ctx context.Context, req *dto.RegisterSuperAdminRequest) (*models.PublicUser, error) {
	missing := validation.RequiredFields(map[string]string{
		"username": req.Username,
		"password": req.Password,
		"email":    req.Email,
		"userRole": req.UserRole,
	})
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("email")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		UserRole: models.RoleSuperAdmin,
	}
	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Super admin registered")
	return user.Public(), nil
}

// RegisterBranchAdmin creates a branch admin account together with its
// profile row. Both are written in one transaction so a failed profile
// insert never leaves behind an orphaned account.
func (s *AuthService) RegisterBranchAdmin(ctx context.Context, req *dto.RegisterBranchAdminRequest) (*dto.RegisterBranchAdminResponse, error) {
	missing := validation.RequiredFields(map[string]string{
		"username":    req.Username,
		"password":    req.Password,
		"email":       req.Email,
		"userRole":    req.UserRole,
		"fullName":    req.FullName,
		"cnicNumber":  req.CnicNumber,
		"phoneNumber": req.PhoneNumber,
		"address":     req.Address,
		"gender":      req.Gender,
	})
	if req.Salary == 0 {
		missing = append(missing, "salary")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("email")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		UserRole: models.RoleBranchAdmin,
	}
	admin := &models.BranchAdmin{
		FullName:    req.FullName,
		CnicNumber:  req.CnicNumber,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Salary:      req.Salary,
		Gender:      req.Gender,
	}
	if err := s.branchAdminRepo.CreateWithUser(ctx, user, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Int64("branchAdminId", admin.ID).Msg("Branch admin registered")
	return &dto.RegisterBranchAdminResponse{
		User:        user.Public(),
		BranchAdmin: admin,
	}, nil
}

// Login authenticates by email and password and returns a session token
// together with the role specific context. A wrong password and an unknown
// email produce the same error so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	missing := validation.RequiredFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// A stale lastLoginAt is not worth failing the login over.
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
	} else {
		user.LastLoginAt = &now
	}

	roleContext, err := s.contextRegistry.resolve(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.UserRole)).Msg("User logged in")
	return &dto.LoginResponse{
		Token:   token,
		User:    user.Public(),
		Context: roleContext,
	}, nil
}

// SwitchSession issues a session token for another account without a
// password. The literal value "Super Admin" switches back to the super admin
// account; anything else must be the account id of a branch admin.
func (s *AuthService) SwitchSession(ctx context.Context, req *dto.SwitchSessionRequest) (*dto.SwitchSessionResponse, error) {
	if req.BranchAdminID == "" {
		return nil, apperrors.NewValidationError("branchAdminId")
	}

	var user *models.User
	if req.BranchAdminID == models.SuperAdminSentinel {
		var err error
		user, err = s.userRepo.GetFirstUserByRole(ctx, models.RoleSuperAdmin)
		if err != nil {
			return nil, err
		}
	} else {
		userID, err := strconv.ParseInt(req.BranchAdminID, 10, 64)
		if err != nil {
			return nil, apperrors.ErrBranchAdminNotFound
		}
		user, err = s.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return nil, apperrors.ErrBranchAdminNotFound
			}
			return nil, err
		}
		if user.UserRole != models.RoleBranchAdmin {
			return nil, apperrors.ErrBranchAdminNotFound
		}
	}

	token, err := s.jwtService.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.UserRole)).Msg("Session switched")
	return &dto.SwitchSessionResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// ForgotPassword issues a reset token for the account behind the given
// email and mails it out. The token is also stored on the user row so a
// token can only be redeemed once.
func (s *AuthService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	if req.Email == "" {
		return apperrors.NewValidationError("email")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	token, err := s.jwtService.GenerateResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("error generating reset token: %w", err)
	}
	if err := s.userRepo.SetResetToken(ctx, user.ID, token); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.Username, token); err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to send password reset email")
		return fmt.Errorf("error sending reset email: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Password reset email sent")
	return nil
}

// ResetPassword redeems a reset token and stores the new password. The
// stored token is cleared in the same update, which invalidates the token
// for any further attempt.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	missing := validation.RequiredFields(map[string]string{
		"token":       req.Token,
		"newPassword": req.NewPassword,
	})
	if len(missing) > 0 {
		return apperrors.NewValidationError(missing...)
	}

	claims, err := s.jwtService.ValidateResetToken(req.Token)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}
	if user.ResetToken == nil || *user.ResetToken != req.Token {
		return apperrors.ErrInvalidResetToken
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.userRepo.ResetPassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Password reset completed")
	return nil
}
