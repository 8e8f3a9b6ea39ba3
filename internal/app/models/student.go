package models

import "time"

// Student defines the student record based on the 'students' table. Students do
// not carry a login account; guardians act on their behalf.
type Student struct {
	ID                 int64     `json:"id" db:"id" example:"1"`
	BranchID           int64     `json:"branchId" db:"branch_id"`
	GuardianID         *int64    `json:"guardianId,omitempty" db:"guardian_id"`
	FullName           string    `json:"fullName" db:"full_name"`
	DateOfBirth        time.Time `json:"dateOfBirth" db:"date_of_birth"`
	Gender             string    `json:"gender" db:"gender"`
	RegistrationNumber string    `json:"registrationNumber" db:"registration_number"`
	ClassName          string    `json:"className" db:"class_name" example:"Grade 5"`
	Section            string    `json:"section" db:"section" example:"A"`
	AdmissionDate      time.Time `json:"admissionDate" db:"admission_date"`
	Photo              *string   `json:"photo,omitempty" db:"photo"` // Stored filename, served from /assets/images/student
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Guardian *Guardian `json:"guardian,omitempty"`
}
