package models

import "time"

// Staff defines the staff profile based on the 'staff' table.
type Staff struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	UserID         int64     `json:"-" db:"user_id"`
	BranchID       int64     `json:"branchId" db:"branch_id"`
	FullName       string    `json:"fullName" db:"full_name"`
	CnicNumber     string    `json:"cnicNumber" db:"cnic_number"`
	PhoneNumber    string    `json:"phoneNumber" db:"phone_number"`
	Address        string    `json:"address" db:"address"`
	Gender         string    `json:"gender" db:"gender"`
	Cast           string    `json:"cast" db:"cast"`
	JoinDate       time.Time `json:"joinDate" db:"join_date"`
	Salary         float64   `json:"salary" db:"salary"`
	BasicSalary    float64   `json:"basicSalary" db:"basic_salary"`
	StaffType      string    `json:"staffType" db:"staff_type" example:"Accountant"`
	EmployeeNumber string    `json:"employeeNumber" db:"employee_number"`
	Photo          *string   `json:"photo,omitempty" db:"photo"` // Stored filename, served from /assets/images/staff
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User   *PublicUser `json:"user,omitempty"`
	Branch *Branch     `json:"branch,omitempty"`
}
