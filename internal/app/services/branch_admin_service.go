package services

import (
	"context"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/repositories"
	"github.com/rs/zerolog"
)

// BranchAdminService handles operations on branch admin profiles
type BranchAdminService struct {
	branchAdminRepo repositories.IBranchAdminRepository
	logger          zerolog.Logger
}

// NewBranchAdminService creates a new BranchAdminService
func NewBranchAdminService(branchAdminRepo repositories.IBranchAdminRepository, logger zerolog.Logger) *BranchAdminService {
	return &BranchAdminService{
		branchAdminRepo: branchAdminRepo,
		logger:          logger,
	}
}

// GetAll returns every branch admin together with its linked account fields.
func (s *BranchAdminService) GetAll(ctx context.Context) ([]*models.BranchAdmin, error) {
	return s.branchAdminRepo.GetAll(ctx)
}

// GetByID returns a single branch admin profile.
func (s *BranchAdminService) GetByID(ctx context.Context, id int64) (*models.BranchAdmin, error) {
	return s.branchAdminRepo.GetByID(ctx, id)
}

// Update applies the non-empty fields of the request to the profile.
func (s *BranchAdminService) Update(ctx context.Context, id int64, req *dto.UpdateBranchAdminRequest) (*models.BranchAdmin, error) {
	admin, err := s.branchAdminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		admin.FullName = req.FullName
	}
	if req.CnicNumber != "" {
		admin.CnicNumber = req.CnicNumber
	}
	if req.PhoneNumber != "" {
		admin.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		admin.Address = req.Address
	}
	if req.Gender != "" {
		admin.Gender = req.Gender
	}
	if req.Salary != nil {
		admin.Salary = *req.Salary
	}

	if err := s.branchAdminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("branchAdminId", id).Msg("Branch admin updated")
	return admin, nil
}

// Delete removes the branch admin and the account it belongs to. Branches
// assigned to it fall back to unassigned.
func (s *BranchAdminService) Delete(ctx context.Context, id int64) error {
	if err := s.branchAdminRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("branchAdminId", id).Msg("Branch admin deleted")
	return nil
}
