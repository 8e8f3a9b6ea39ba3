package dto

// UpdateBranchAdminRequest represents an update to a branch admin profile.
// Empty fields keep their current values.
type UpdateBranchAdminRequest struct {
	FullName    string   `json:"fullName"`
	CnicNumber  string   `json:"cnicNumber"`
	PhoneNumber string   `json:"phoneNumber"`
	Address     string   `json:"address"`
	Salary      *float64 `json:"salary"`
	Gender      string   `json:"gender"`
}
