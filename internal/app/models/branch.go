package models

import "time"

// Branch defines an organizational unit based on the 'branches' table.
// A branch is assigned to at most one branch admin at a time.
type Branch struct {
	ID                 int64     `json:"id" db:"id" example:"1"`
	BranchName         string    `json:"branchName" db:"branch_name" example:"Gulberg Campus"`
	BranchAddress      string    `json:"branchAddress" db:"branch_address"`
	BranchPhoneNumber  string    `json:"branchPhoneNumber" db:"branch_phone_number"`
	BranchEmailAddress string    `json:"branchEmailAddress" db:"branch_email_address"`
	BranchType         string    `json:"branchType" db:"branch_type" example:"School"`
	AssignedTo         *int64    `json:"assignedTo,omitempty" db:"assigned_to"` // BranchAdmin id (nullable)
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Admin *BranchAdmin `json:"admin,omitempty"`
}

// BranchSetting holds per-branch operating settings based on the
// 'branch_settings' table. At most one settings row exists per branch.
type BranchSetting struct {
	ID                int64     `json:"id" db:"id"`
	BranchID          int64     `json:"branchId" db:"branch_id"`
	StartTime         string    `json:"startTime" db:"start_time" example:"08:00"`
	EndTime           string    `json:"endTime" db:"end_time" example:"14:00"`
	MachineAttendance bool      `json:"machineAttendance" db:"machine_attendance"`
	Diary             bool      `json:"diary" db:"diary"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}
