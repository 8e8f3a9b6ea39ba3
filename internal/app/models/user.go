package models

import (
	"time"
)

// User defines the authentication account model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the user
	Username    string     `json:"username" db:"username" example:"hamza.khan"`                             // Display name for the admin UI
	Email       string     `json:"email" db:"email" example:"admin@school.pk"`                              // User's email address (unique)
	Password    string     `json:"-" db:"password"`                                                         // User's hashed password (excluded from JSON)
	UserRole    RoleType   `json:"userRole" db:"user_role" example:"Branch Admin"`                          // User's role
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2025-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
	ResetToken  *string    `json:"-" db:"reset_token"`                                                      // Outstanding password reset token (nullable, excluded from JSON)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2025-01-01T10:00:00Z"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2025-01-02T15:30:00Z"`
}

// PublicUser is the representation of a user safe to return from handlers:
// the password hash and reset token never leave the server.
type PublicUser struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	UserRole    RoleType   `json:"userRole"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Public strips credential material from a user record.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		UserRole:    u.UserRole,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
