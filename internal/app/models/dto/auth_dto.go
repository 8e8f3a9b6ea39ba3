package dto

import (
	"encoding/json"

	"github.com/hamzak/maktab/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@school.pk"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse carries the session token, the sanitized account, and any
// role-specific context the resolver produced. Context keys are merged into
// the top-level JSON object so clients see {token, user, branchAdmin, branch,
// branchSetting, branchId, ...}.
type LoginResponse struct {
	Token   string
	User    *models.PublicUser
	Context map[string]interface{}
}

// MarshalJSON flattens the role context into the response object.
func (r LoginResponse) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"token": r.Token,
		"user":  r.User,
	}
	for k, v := range r.Context {
		out[k] = v
	}
	return json.Marshal(out)
}

// RegisterSuperAdminRequest represents a super admin registration payload
type RegisterSuperAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	UserRole string `json:"userRole"`
}

// RegisterBranchAdminRequest represents a branch admin registration payload
type RegisterBranchAdminRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Email       string  `json:"email"`
	UserRole    string  `json:"userRole"`
	FullName    string  `json:"fullName"`
	CnicNumber  string  `json:"cnicNumber"`
	PhoneNumber string  `json:"phoneNumber"`
	Address     string  `json:"address"`
	Salary      float64 `json:"salary"`
	Gender      string  `json:"gender"`
}

// RegisterBranchAdminResponse pairs the created account with its profile
type RegisterBranchAdminResponse struct {
	User        *models.PublicUser  `json:"user"`
	BranchAdmin *models.BranchAdmin `json:"branchAdmin"`
}

// ForgotPasswordRequest represents a password recovery request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest represents a password reset submission
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// SwitchSessionRequest selects the account to switch the session to. The value
// is either a branch admin's user id or the literal "Super Admin".
type SwitchSessionRequest struct {
	BranchAdminID string `json:"branchAdminId" binding:"required"`
}

// SwitchSessionResponse carries the fresh token and the target account
type SwitchSessionResponse struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}
