package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/repositories"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/auth"
	"github.com/hamzak/maktab/internal/pkg/helpers"
	"github.com/hamzak/maktab/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// StaffService handles staff registration and management. Staff members carry
// a login account, so creation writes the account and profile together.
type StaffService struct {
	staffRepo  repositories.IStaffRepository
	branchRepo repositories.IBranchRepository
	logger     zerolog.Logger
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo repositories.IStaffRepository, branchRepo repositories.IBranchRepository, logger zerolog.Logger) *StaffService {
	return &StaffService{
		staffRepo:  staffRepo,
		branchRepo: branchRepo,
		logger:     logger,
	}
}

// Create registers a staff member and their login account in one transaction.
func (s *StaffService) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.CreateStaffResponse, error) {
	missing := validation.RequiredFields(map[string]string{
		"username":    req.Username,
		"password":    req.Password,
		"email":       req.Email,
		"userRole":    req.UserRole,
		"fullName":    req.FullName,
		"cnicNumber":  req.CnicNumber,
		"phoneNumber": req.PhoneNumber,
		"gender":      req.Gender,
		"staffType":   req.StaffType,
	})
	if req.BranchID == 0 {
		missing = append(missing, "branchId")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("email")
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return nil, err
	}

	role := models.RoleType(req.UserRole)
	if !models.IsValidRole(role) {
		role = models.RoleStaff
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	joinDate, err := helpers.ParseDate(req.JoinDate)
	if err != nil {
		joinDate = time.Now()
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		UserRole: role,
	}
	staff := &models.Staff{
		BranchID:       req.BranchID,
		FullName:       req.FullName,
		CnicNumber:     req.CnicNumber,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		Gender:         req.Gender,
		Cast:           req.Cast,
		JoinDate:       joinDate,
		Salary:         req.Salary,
		BasicSalary:    req.BasicSalary,
		StaffType:      req.StaffType,
		EmployeeNumber: req.EmployeeNumber,
	}
	if req.Photo != "" {
		staff.Photo = &req.Photo
	}

	if err := s.staffRepo.CreateWithUser(ctx, user, staff); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("staffId", staff.ID).Int64("branchId", staff.BranchID).Msg("Staff member registered")
	return &dto.CreateStaffResponse{
		User:  user.Public(),
		Staff: staff,
	}, nil
}

// GetAllByBranch returns the staff of a branch.
func (s *StaffService) GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Staff, error) {
	return s.staffRepo.GetAllByBranch(ctx, branchID)
}

// GetByID returns a single staff member.
func (s *StaffService) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// Update applies the non-empty fields of the request to the staff member.
func (s *StaffService) Update(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		staff.FullName = req.FullName
	}
	if req.CnicNumber != "" {
		staff.CnicNumber = req.CnicNumber
	}
	if req.PhoneNumber != "" {
		staff.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		staff.Address = req.Address
	}
	if req.Gender != "" {
		staff.Gender = req.Gender
	}
	if req.Cast != "" {
		staff.Cast = req.Cast
	}
	if req.Salary != 0 {
		staff.Salary = req.Salary
	}
	if req.StaffType != "" {
		staff.StaffType = req.StaffType
	}
	if req.EmployeeNumber != "" {
		staff.EmployeeNumber = req.EmployeeNumber
	}
	if req.BranchID != 0 {
		if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
			return nil, err
		}
		staff.BranchID = req.BranchID
	}
	if req.JoinDate != "" {
		joinDate, err := helpers.ParseDate(req.JoinDate)
		if err == nil {
			staff.JoinDate = joinDate
		}
	}
	if req.Photo != "" {
		staff.Photo = &req.Photo
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("staffId", id).Msg("Staff member updated")
	return staff, nil
}

// Delete removes the staff member and the account it belongs to.
func (s *StaffService) Delete(ctx context.Context, id int64) error {
	if err := s.staffRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("staffId", id).Msg("Staff member deleted")
	return nil
}
