package dto

// CreateStudentRequest represents the multipart form for registering a student
type CreateStudentRequest struct {
	FullName           string `form:"fullName"`
	DateOfBirth        string `form:"dateOfBirth"`
	Gender             string `form:"gender"`
	RegistrationNumber string `form:"registrationNumber"`
	ClassName          string `form:"className"`
	Section            string `form:"section"`
	AdmissionDate      string `form:"admissionDate"`
	BranchID           int64  `form:"branchId"`
	GuardianID         *int64 `form:"guardianId"`

	Photo string `form:"-"`
}

// UpdateStudentRequest represents the multipart form for updating a student.
// Empty fields keep their current values.
type UpdateStudentRequest struct {
	FullName           string `form:"fullName"`
	DateOfBirth        string `form:"dateOfBirth"`
	Gender             string `form:"gender"`
	RegistrationNumber string `form:"registrationNumber"`
	ClassName          string `form:"className"`
	Section            string `form:"section"`
	AdmissionDate      string `form:"admissionDate"`
	GuardianID         *int64 `form:"guardianId"`

	Photo string `form:"-"`
}
