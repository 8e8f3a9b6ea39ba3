// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/services"
	"github.com/hamzak/maktab/internal/middleware"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// sessionCookieMaxAge matches the session token lifetime.
const sessionCookieMaxAge = 3600

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
// @Summary Log in
// @Description Authenticates by email and password and returns a session token plus role specific context.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Logged in"
// @Failure 400 {object} dto.APIResponse "Missing fields or invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("email", "password"))
		return
	}

	loginResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, loginResponse.Token)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", loginResponse))
}

// RegisterSuperAdmin handles super admin registration
// @Summary Register a super admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterSuperAdminRequest true "Super admin registration information"
// @Success 201 {object} dto.APIResponse "Super admin created"
// @Failure 400 {object} dto.APIResponse "Missing fields or user already exists"
// @Router /auth/register-super-admin [post]
func (c *AuthController) RegisterSuperAdmin(ctx *gin.Context) {
	var req dto.RegisterSuperAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid super admin registration payload")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("email", "password", "userRole", "username"))
		return
	}

	user, err := c.authService.RegisterSuperAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Super admin registered successfully", user))
}

// RegisterBranchAdmin handles branch admin registration
// @Summary Register a branch admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterBranchAdminRequest true "Branch admin registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterBranchAdminResponse} "Branch admin created"
// @Failure 400 {object} dto.APIResponse "Missing fields or user already exists"
// @Router /auth/register-branch-admin [post]
func (c *AuthController) RegisterBranchAdmin(ctx *gin.Context) {
	var req dto.RegisterBranchAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid branch admin registration payload")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("email", "password", "userRole", "username"))
		return
	}

	resp, err := c.authService.RegisterBranchAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Branch admin registered successfully", resp))
}

// SwitchSession issues a token for another account
// @Summary Switch session
// @Description Issues a session token for a branch admin account, or back to the super admin. Super admin only.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SwitchSessionRequest true "Switch target"
// @Success 200 {object} dto.APIResponse{data=dto.SwitchSessionResponse} "Session switched"
// @Failure 404 {object} dto.APIResponse "Branch admin not found"
// @Router /auth/switch-session [post]
func (c *AuthController) SwitchSession(ctx *gin.Context) {
	var req dto.SwitchSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid switch session payload")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("branchAdminId"))
		return
	}

	resp, err := c.authService.SwitchSession(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, resp.Token)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Session switched successfully", resp))
}

// ForgotPassword mails a reset token
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.APIResponse "Reset email sent"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("email"))
		return
	}

	if err := c.authService.ForgotPassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password reset email sent", nil))
}

// ResetPassword redeems a reset token
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} dto.APIResponse "Password updated"
// @Failure 400 {object} dto.APIResponse "Invalid or expired reset token"
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("token", "newPassword"))
		return
	}

	if err := c.authService.ResetPassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password reset successfully", nil))
}

// setSessionCookie mirrors the token into an http-only cookie for browser
// clients; API clients keep using the Authorization header.
func setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetCookie("token", token, sessionCookieMaxAge, "/", "", false, true)
}
