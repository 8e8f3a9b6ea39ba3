package dto

// CreateGuardianRequest represents the multipart form for registering a guardian
type CreateGuardianRequest struct {
	FullName    string `form:"fullName"`
	CnicNumber  string `form:"cnicNumber"`
	PhoneNumber string `form:"phoneNumber"`
	Address     string `form:"address"`
	Relation    string `form:"relation"`
	Occupation  string `form:"occupation"`
	BranchID    int64  `form:"branchId"`

	Photo string `form:"-"`
}

// UpdateGuardianRequest represents the multipart form for updating a guardian.
// Empty fields keep their current values.
type UpdateGuardianRequest struct {
	FullName    string `form:"fullName"`
	CnicNumber  string `form:"cnicNumber"`
	PhoneNumber string `form:"phoneNumber"`
	Address     string `form:"address"`
	Relation    string `form:"relation"`
	Occupation  string `form:"occupation"`

	Photo string `form:"-"`
}
