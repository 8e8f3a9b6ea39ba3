package models

import "time"

// Guardian defines the guardian record based on the 'guardians' table.
type Guardian struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	BranchID    int64     `json:"branchId" db:"branch_id"`
	FullName    string    `json:"fullName" db:"full_name"`
	CnicNumber  string    `json:"cnicNumber" db:"cnic_number"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	Address     string    `json:"address" db:"address"`
	Relation    string    `json:"relation" db:"relation" example:"Father"`
	Occupation  string    `json:"occupation" db:"occupation"`
	Photo       *string   `json:"photo,omitempty" db:"photo"` // Stored filename, served from /assets/images/guardian
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
