package dto

// CreateBranchRequest represents a new branch payload
type CreateBranchRequest struct {
	BranchName         string `json:"branchName"`
	BranchAddress      string `json:"branchAddress"`
	BranchPhoneNumber  string `json:"branchPhoneNumber"`
	BranchEmailAddress string `json:"branchEmailAddress"`
	BranchType         string `json:"branchType"`
	AssignedTo         *int64 `json:"assignedTo,omitempty"`
}

// UpdateBranchRequest represents an update to a branch. Empty fields keep
// their current values.
type UpdateBranchRequest struct {
	BranchName         string `json:"branchName"`
	BranchAddress      string `json:"branchAddress"`
	BranchPhoneNumber  string `json:"branchPhoneNumber"`
	BranchEmailAddress string `json:"branchEmailAddress"`
	BranchType         string `json:"branchType"`
}

// AssignBranchRequest assigns a branch to a branch admin. A null id clears
// the assignment.
type AssignBranchRequest struct {
	BranchAdminID *int64 `json:"branchAdminId"`
}

// UpdateBranchSettingRequest represents branch settings changes
type UpdateBranchSettingRequest struct {
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	MachineAttendance *bool  `json:"machineAttendance"`
	Diary             *bool  `json:"diary"`
}
