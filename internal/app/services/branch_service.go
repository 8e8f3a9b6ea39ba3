package services

import (
	"context"
	"errors"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/repositories"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// BranchService handles operations on branches and their settings
type BranchService struct {
	branchRepo      repositories.IBranchRepository
	settingRepo     repositories.IBranchSettingRepository
	branchAdminRepo repositories.IBranchAdminRepository
	logger          zerolog.Logger
}

// NewBranchService creates a new BranchService
func NewBranchService(
	branchRepo repositories.IBranchRepository,
	settingRepo repositories.IBranchSettingRepository,
	branchAdminRepo repositories.IBranchAdminRepository,
	logger zerolog.Logger,
) *BranchService {
	return &BranchService{
		branchRepo:      branchRepo,
		settingRepo:     settingRepo,
		branchAdminRepo: branchAdminRepo,
		logger:          logger,
	}
}

// Create registers a new branch.
func (s *BranchService) Create(ctx context.Context, req *dto.CreateBranchRequest) (*models.Branch, error) {
	missing := validation.RequiredFields(map[string]string{
		"branchName":         req.BranchName,
		"branchAddress":      req.BranchAddress,
		"branchPhoneNumber":  req.BranchPhoneNumber,
		"branchEmailAddress": req.BranchEmailAddress,
		"branchType":         req.BranchType,
	})
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}

	if req.AssignedTo != nil {
		if _, err := s.branchAdminRepo.GetByID(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
	}

	branch := &models.Branch{
		BranchName:         req.BranchName,
		BranchAddress:      req.BranchAddress,
		BranchPhoneNumber:  req.BranchPhoneNumber,
		BranchEmailAddress: req.BranchEmailAddress,
		BranchType:         req.BranchType,
		AssignedTo:         req.AssignedTo,
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("branchId", branch.ID).Str("name", branch.BranchName).Msg("Branch created")
	return branch, nil
}

// GetAll returns every branch.
func (s *BranchService) GetAll(ctx context.Context) ([]*models.Branch, error) {
	return s.branchRepo.GetAll(ctx)
}

// GetByID returns a single branch.
func (s *BranchService) GetByID(ctx context.Context, id int64) (*models.Branch, error) {
	return s.branchRepo.GetByID(ctx, id)
}

// Update applies the non-empty fields of the request to the branch.
func (s *BranchService) Update(ctx context.Context, id int64, req *dto.UpdateBranchRequest) (*models.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BranchName != "" {
		branch.BranchName = req.BranchName
	}
	if req.BranchAddress != "" {
		branch.BranchAddress = req.BranchAddress
	}
	if req.BranchPhoneNumber != "" {
		branch.BranchPhoneNumber = req.BranchPhoneNumber
	}
	if req.BranchEmailAddress != "" {
		branch.BranchEmailAddress = req.BranchEmailAddress
	}
	if req.BranchType != "" {
		branch.BranchType = req.BranchType
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("branchId", id).Msg("Branch updated")
	return branch, nil
}

// Assign links a branch to a branch admin, or clears the link when the
// request carries a null id.
func (s *BranchService) Assign(ctx context.Context, branchID int64, req *dto.AssignBranchRequest) (*models.Branch, error) {
	if req.BranchAdminID != nil {
		if _, err := s.branchAdminRepo.GetByID(ctx, *req.BranchAdminID); err != nil {
			return nil, err
		}
	}
	if err := s.branchRepo.Assign(ctx, branchID, req.BranchAdminID); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("branchId", branchID).Msg("Branch assignment changed")
	return s.branchRepo.GetByID(ctx, branchID)
}

// Delete removes a branch together with its settings, staff, students and
// guardians.
func (s *BranchService) Delete(ctx context.Context, id int64) error {
	if err := s.branchRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("branchId", id).Msg("Branch deleted")
	return nil
}

// GetSettings returns the settings of a branch. Branches that never stored
// settings get defaults back instead of an error.
func (s *BranchService) GetSettings(ctx context.Context, branchID int64) (*models.BranchSetting, error) {
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	setting, err := s.settingRepo.GetByBranchID(ctx, branchID)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchSettingNotFound) {
			return &models.BranchSetting{BranchID: branchID}, nil
		}
		return nil, err
	}
	return setting, nil
}

// UpdateSettings upserts the settings row of a branch.
func (s *BranchService) UpdateSettings(ctx context.Context, branchID int64, req *dto.UpdateBranchSettingRequest) (*models.BranchSetting, error) {
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	setting, err := s.settingRepo.GetByBranchID(ctx, branchID)
	if err != nil {
		if !errors.Is(err, repositories.ErrBranchSettingNotFound) {
			return nil, err
		}
		setting = &models.BranchSetting{BranchID: branchID}
	}

	if req.StartTime != "" {
		setting.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		setting.EndTime = req.EndTime
	}
	if req.MachineAttendance != nil {
		setting.MachineAttendance = *req.MachineAttendance
	}
	if req.Diary != nil {
		setting.Diary = *req.Diary
	}

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("branchId", branchID).Msg("Branch settings updated")
	return setting, nil
}
