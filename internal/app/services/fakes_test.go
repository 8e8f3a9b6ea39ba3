package services

import (
	"context"
	"sync"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/repositories"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrUserAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone
	return user.ID, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetFirstUserByRole(_ context.Context, role models.RoleType) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var found *models.User
	for _, u := range f.users {
		if u.UserRole == role && (found == nil || u.ID < found.ID) {
			found = u
		}
	}
	if found == nil {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *found
	return &clone, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	return nil
}

func (f *fakeUserRepo) SetResetToken(_ context.Context, userID int64, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.ResetToken = &token
	return nil
}

func (f *fakeUserRepo) ResetPassword(_ context.Context, userID int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = passwordHash
	u.ResetToken = nil
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeBranchAdminRepo struct {
	mu     sync.Mutex
	users  *fakeUserRepo
	admins map[int64]*models.BranchAdmin
	nextID int64
}

func newFakeBranchAdminRepo(users *fakeUserRepo) *fakeBranchAdminRepo {
	return &fakeBranchAdminRepo{users: users, admins: make(map[int64]*models.BranchAdmin), nextID: 1}
}

func (f *fakeBranchAdminRepo) CreateWithUser(ctx context.Context, user *models.User, admin *models.BranchAdmin) error {
	if _, err := f.users.CreateUser(ctx, user); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	admin.ID = f.nextID
	f.nextID++
	admin.UserID = user.ID
	admin.User = user.Public()
	clone := *admin
	f.admins[admin.ID] = &clone
	return nil
}

func (f *fakeBranchAdminRepo) GetAll(_ context.Context) ([]*models.BranchAdmin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.BranchAdmin, 0, len(f.admins))
	for _, a := range f.admins {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeBranchAdminRepo) GetByID(_ context.Context, id int64) (*models.BranchAdmin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[id]
	if !ok {
		return nil, apperrors.ErrBranchAdminNotFound
	}
	clone := *a
	return &clone, nil
}

func (f *fakeBranchAdminRepo) GetByUserID(_ context.Context, userID int64) (*models.BranchAdmin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.UserID == userID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, apperrors.ErrBranchAdminNotFound
}

func (f *fakeBranchAdminRepo) Update(_ context.Context, admin *models.BranchAdmin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.admins[admin.ID]; !ok {
		return apperrors.ErrBranchAdminNotFound
	}
	clone := *admin
	f.admins[admin.ID] = &clone
	return nil
}

func (f *fakeBranchAdminRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	a, ok := f.admins[id]
	if !ok {
		f.mu.Unlock()
		return apperrors.ErrBranchAdminNotFound
	}
	delete(f.admins, id)
	userID := a.UserID
	f.mu.Unlock()
	return f.users.DeleteUser(ctx, userID)
}

type fakeBranchRepo struct {
	mu       sync.Mutex
	branches map[int64]*models.Branch
	nextID   int64
}

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{branches: make(map[int64]*models.Branch), nextID: 1}
}

func (f *fakeBranchRepo) Create(_ context.Context, branch *models.Branch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	branch.ID = f.nextID
	f.nextID++
	clone := *branch
	f.branches[branch.ID] = &clone
	return nil
}

func (f *fakeBranchRepo) GetAll(_ context.Context) ([]*models.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Branch, 0, len(f.branches))
	for _, b := range f.branches {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeBranchRepo) GetByID(_ context.Context, id int64) (*models.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.branches[id]
	if !ok {
		return nil, apperrors.ErrBranchNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBranchRepo) GetByAssignedTo(_ context.Context, branchAdminID int64) (*models.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.branches {
		if b.AssignedTo != nil && *b.AssignedTo == branchAdminID {
			clone := *b
			return &clone, nil
		}
	}
	return nil, apperrors.ErrBranchNotFound
}

func (f *fakeBranchRepo) Update(_ context.Context, branch *models.Branch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.branches[branch.ID]; !ok {
		return apperrors.ErrBranchNotFound
	}
	clone := *branch
	f.branches[branch.ID] = &clone
	return nil
}

func (f *fakeBranchRepo) Assign(_ context.Context, branchID int64, branchAdminID *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.branches[branchID]
	if !ok {
		return apperrors.ErrBranchNotFound
	}
	b.AssignedTo = branchAdminID
	return nil
}

func (f *fakeBranchRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.branches[id]; !ok {
		return apperrors.ErrBranchNotFound
	}
	delete(f.branches, id)
	return nil
}

type fakeBranchSettingRepo struct {
	mu       sync.Mutex
	settings map[int64]*models.BranchSetting
	nextID   int64
}

func newFakeBranchSettingRepo() *fakeBranchSettingRepo {
	return &fakeBranchSettingRepo{settings: make(map[int64]*models.BranchSetting), nextID: 1}
}

func (f *fakeBranchSettingRepo) GetByBranchID(_ context.Context, branchID int64) (*models.BranchSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.settings[branchID]
	if !ok {
		return nil, repositories.ErrBranchSettingNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeBranchSettingRepo) Upsert(_ context.Context, setting *models.BranchSetting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.settings[setting.BranchID]; ok {
		setting.ID = existing.ID
	} else {
		setting.ID = f.nextID
		f.nextID++
	}
	clone := *setting
	f.settings[setting.BranchID] = &clone
	return nil
}

type fakeStaffRepo struct {
	mu     sync.Mutex
	users  *fakeUserRepo
	staff  map[int64]*models.Staff
	nextID int64
}

func newFakeStaffRepo(users *fakeUserRepo) *fakeStaffRepo {
	return &fakeStaffRepo{users: users, staff: make(map[int64]*models.Staff), nextID: 1}
}

func (f *fakeStaffRepo) CreateWithUser(ctx context.Context, user *models.User, staff *models.Staff) error {
	if _, err := f.users.CreateUser(ctx, user); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	staff.ID = f.nextID
	f.nextID++
	staff.UserID = user.ID
	staff.User = user.Public()
	clone := *staff
	f.staff[staff.ID] = &clone
	return nil
}

func (f *fakeStaffRepo) GetAllByBranch(_ context.Context, branchID int64) ([]*models.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Staff, 0)
	for _, s := range f.staff {
		if s.BranchID == branchID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*models.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, staff *models.Staff) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.staff[staff.ID]; !ok {
		return apperrors.ErrStaffNotFound
	}
	clone := *staff
	f.staff[staff.ID] = &clone
	return nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	s, ok := f.staff[id]
	if !ok {
		f.mu.Unlock()
		return apperrors.ErrStaffNotFound
	}
	delete(f.staff, id)
	userID := s.UserID
	f.mu.Unlock()
	return f.users.DeleteUser(ctx, userID)
}

type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	student.ID = f.nextID
	f.nextID++
	clone := *student
	f.students[student.ID] = &clone
	return nil
}

func (f *fakeStudentRepo) GetAllByBranch(_ context.Context, branchID int64) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Student, 0)
	for _, s := range f.students {
		if s.BranchID == branchID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	clone := *student
	f.students[student.ID] = &clone
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeGuardianRepo struct {
	mu        sync.Mutex
	guardians map[int64]*models.Guardian
	nextID    int64
}

func newFakeGuardianRepo() *fakeGuardianRepo {
	return &fakeGuardianRepo{guardians: make(map[int64]*models.Guardian), nextID: 1}
}

func (f *fakeGuardianRepo) Create(_ context.Context, guardian *models.Guardian) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	guardian.ID = f.nextID
	f.nextID++
	clone := *guardian
	f.guardians[guardian.ID] = &clone
	return nil
}

func (f *fakeGuardianRepo) GetAllByBranch(_ context.Context, branchID int64) ([]*models.Guardian, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Guardian, 0)
	for _, g := range f.guardians {
		if g.BranchID == branchID {
			clone := *g
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeGuardianRepo) GetByID(_ context.Context, id int64) (*models.Guardian, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.guardians[id]
	if !ok {
		return nil, apperrors.ErrGuardianNotFound
	}
	clone := *g
	return &clone, nil
}

func (f *fakeGuardianRepo) Update(_ context.Context, guardian *models.Guardian) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.guardians[guardian.ID]; !ok {
		return apperrors.ErrGuardianNotFound
	}
	clone := *guardian
	f.guardians[guardian.ID] = &clone
	return nil
}

func (f *fakeGuardianRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.guardians[id]; !ok {
		return apperrors.ErrGuardianNotFound
	}
	delete(f.guardians, id)
	return nil
}

// fakeEmailService records the last reset token it was asked to send.
type fakeEmailService struct {
	mu        sync.Mutex
	lastEmail string
	lastToken string
	sendErr   error
}

func (f *fakeEmailService) SendPasswordResetEmail(toEmail, toName, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.lastEmail = toEmail
	f.lastToken = token
	return nil
}
