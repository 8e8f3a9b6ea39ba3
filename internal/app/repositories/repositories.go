package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository implementations
type Repositories struct {
	User          *UserRepository
	BranchAdmin   *BranchAdminRepository
	Branch        *BranchRepository
	BranchSetting *BranchSettingRepository
	Staff         *StaffRepository
	Student       *StudentRepository
	Guardian      *GuardianRepository
}

// NewRepositories creates all repositories over a shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		BranchAdmin:   NewBranchAdminRepository(db),
		Branch:        NewBranchRepository(db),
		BranchSetting: NewBranchSettingRepository(db),
		Staff:         NewStaffRepository(db),
		Student:       NewStudentRepository(db),
		Guardian:      NewGuardianRepository(db),
	}
}
