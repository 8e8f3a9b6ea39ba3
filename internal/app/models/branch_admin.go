package models

import "time"

// BranchAdmin defines the branch admin profile based on the 'branch_admins' table.
// Exactly one profile exists per branch admin user account.
type BranchAdmin struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	UserID      int64     `json:"-" db:"user_id"`                                          // FK to users (serialized via the User relation)
	FullName    string    `json:"fullName" db:"full_name" example:"Hamza Khan"`            // Admin's full name
	CnicNumber  string    `json:"cnicNumber" db:"cnic_number" example:"35202-1234567-1"`   // National identity card number
	PhoneNumber string    `json:"phoneNumber" db:"phone_number" example:"+92-300-1234567"` // Contact number
	Address     string    `json:"address" db:"address"`
	Salary      float64   `json:"salary" db:"salary" example:"85000"`
	Gender      string    `json:"gender" db:"gender" example:"male"`
	Photo       *string   `json:"photo,omitempty" db:"photo"` // Stored filename, served from /assets/images/branchAdmin
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	User *PublicUser `json:"userId,omitempty"` // Associated account; key mirrors the populated userId field of the admin UI
}
