package dto

import "github.com/hamzak/maktab/internal/app/models"

// CreateStaffRequest represents the multipart form for registering a staff
// member together with their login account. The photo file is handled
// separately by the controller.
type CreateStaffRequest struct {
	Username       string  `form:"username"`
	Password       string  `form:"password"`
	Email          string  `form:"email"`
	UserRole       string  `form:"userRole"`
	FullName       string  `form:"fullName"`
	CnicNumber     string  `form:"cnicNumber"`
	PhoneNumber    string  `form:"phoneNumber"`
	Address        string  `form:"address"`
	Gender         string  `form:"gender"`
	Cast           string  `form:"cast"`
	BasicSalary    float64 `form:"basicSalary"`
	Salary         float64 `form:"salary"`
	BranchID       int64   `form:"branchId"`
	JoinDate       string  `form:"joinDate"`
	EmployeeNumber string  `form:"employeeNumber"`
	StaffType      string  `form:"staffType"`

	// Photo filename as stored; populated by the controller after upload
	Photo string `form:"-"`
}

// UpdateStaffRequest represents the multipart form for updating a staff
// member. Empty fields keep their current values.
type UpdateStaffRequest struct {
	FullName       string  `form:"fullName"`
	CnicNumber     string  `form:"cnicNumber"`
	PhoneNumber    string  `form:"phoneNumber"`
	Address        string  `form:"address"`
	Gender         string  `form:"gender"`
	Cast           string  `form:"cast"`
	Salary         float64 `form:"salary"`
	StaffType      string  `form:"staffType"`
	BranchID       int64   `form:"branchId"`
	JoinDate       string  `form:"joinDate"`
	EmployeeNumber string  `form:"employeeNumber"`

	Photo string `form:"-"`
}

// CreateStaffResponse pairs the created account with the staff profile
type CreateStaffResponse struct {
	User  *models.PublicUser `json:"user"`
	Staff *models.Staff      `json:"staff"`
}
