package models

// RoleType defines the user role type. Values match the wire format the admin
// clients send and expect back.
type RoleType string

const (
	RoleSuperAdmin  RoleType = "Super Admin"
	RoleBranchAdmin RoleType = "Branch Admin"
	RoleStaff       RoleType = "Staff"
	RoleTeacher     RoleType = "Teacher"
	RoleStudent     RoleType = "Student"
	RoleGuardian    RoleType = "Guardian"
)

// SuperAdminSentinel is the literal switch-session target that resolves to the
// super admin account instead of a branch admin id.
const SuperAdminSentinel = "Super Admin"

// ValidRoles lists every role accepted at registration time.
var ValidRoles = []RoleType{
	RoleSuperAdmin,
	RoleBranchAdmin,
	RoleStaff,
	RoleTeacher,
	RoleStudent,
	RoleGuardian,
}

// IsValidRole reports whether the given role is a known role type.
func IsValidRole(role RoleType) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
