package services

import (
	"context"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/repositories"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// GuardianService handles guardian records
type GuardianService struct {
	guardianRepo repositories.IGuardianRepository
	branchRepo   repositories.IBranchRepository
	logger       zerolog.Logger
}

// NewGuardianService creates a new GuardianService
func NewGuardianService(guardianRepo repositories.IGuardianRepository, branchRepo repositories.IBranchRepository, logger zerolog.Logger) *GuardianService {
	return &GuardianService{
		guardianRepo: guardianRepo,
		branchRepo:   branchRepo,
		logger:       logger,
	}
}

// Create registers a guardian under a branch.
func (s *GuardianService) Create(ctx context.Context, req *dto.CreateGuardianRequest) (*models.Guardian, error) {
	missing := validation.RequiredFields(map[string]string{
		"fullName":    req.FullName,
		"cnicNumber":  req.CnicNumber,
		"phoneNumber": req.PhoneNumber,
		"relation":    req.Relation,
	})
	if req.BranchID == 0 {
		missing = append(missing, "branchId")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}
	if !validation.IsValidCnic(req.CnicNumber) {
		return nil, apperrors.NewValidationError("cnicNumber")
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return nil, err
	}

	guardian := &models.Guardian{
		BranchID:    req.BranchID,
		FullName:    req.FullName,
		CnicNumber:  req.CnicNumber,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Relation:    req.Relation,
		Occupation:  req.Occupation,
	}
	if req.Photo != "" {
		guardian.Photo = &req.Photo
	}

	if err := s.guardianRepo.Create(ctx, guardian); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("guardianId", guardian.ID).Int64("branchId", guardian.BranchID).Msg("Guardian registered")
	return guardian, nil
}

// GetAllByBranch returns the guardians of a branch.
func (s *GuardianService) GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Guardian, error) {
	return s.guardianRepo.GetAllByBranch(ctx, branchID)
}

// GetByID returns a single guardian.
func (s *GuardianService) GetByID(ctx context.Context, id int64) (*models.Guardian, error) {
	return s.guardianRepo.GetByID(ctx, id)
}

// Update applies the non-empty fields of the request to the guardian.
func (s *GuardianService) Update(ctx context.Context, id int64, req *dto.UpdateGuardianRequest) (*models.Guardian, error) {
	guardian, err := s.guardianRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		guardian.FullName = req.FullName
	}
	if req.CnicNumber != "" {
		guardian.CnicNumber = req.CnicNumber
	}
	if req.PhoneNumber != "" {
		guardian.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		guardian.Address = req.Address
	}
	if req.Relation != "" {
		guardian.Relation = req.Relation
	}
	if req.Occupation != "" {
		guardian.Occupation = req.Occupation
	}
	if req.Photo != "" {
		guardian.Photo = &req.Photo
	}

	if err := s.guardianRepo.Update(ctx, guardian); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("guardianId", id).Msg("Guardian updated")
	return guardian, nil
}

// Delete removes a guardian record.
func (s *GuardianService) Delete(ctx context.Context, id int64) error {
	if err := s.guardianRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("guardianId", id).Msg("Guardian deleted")
	return nil
}
