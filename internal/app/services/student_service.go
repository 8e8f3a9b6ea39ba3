package services

import (
	"context"
	"time"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/repositories"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/helpers"
	"github.com/hamzak/maktab/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// StudentService handles student records. Students have no login account of
// their own; they are keyed to a branch and optionally a guardian.
type StudentService struct {
	studentRepo  repositories.IStudentRepository
	guardianRepo repositories.IGuardianRepository
	branchRepo   repositories.IBranchRepository
	logger       zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	guardianRepo repositories.IGuardianRepository,
	branchRepo repositories.IBranchRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo:  studentRepo,
		guardianRepo: guardianRepo,
		branchRepo:   branchRepo,
		logger:       logger,
	}
}

// Create registers a student under a branch.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	missing := validation.RequiredFields(map[string]string{
		"fullName":           req.FullName,
		"gender":             req.Gender,
		"registrationNumber": req.RegistrationNumber,
		"className":          req.ClassName,
	})
	if req.BranchID == 0 {
		missing = append(missing, "branchId")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(missing...)
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return nil, err
	}
	if req.GuardianID != nil {
		if _, err := s.guardianRepo.GetByID(ctx, *req.GuardianID); err != nil {
			return nil, err
		}
	}

	dateOfBirth, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("dateOfBirth")
	}
	admissionDate, err := helpers.ParseDate(req.AdmissionDate)
	if err != nil {
		admissionDate = time.Now()
	}

	student := &models.Student{
		BranchID:           req.BranchID,
		GuardianID:         req.GuardianID,
		FullName:           req.FullName,
		DateOfBirth:        dateOfBirth,
		Gender:             req.Gender,
		RegistrationNumber: req.RegistrationNumber,
		ClassName:          req.ClassName,
		Section:            req.Section,
		AdmissionDate:      admissionDate,
	}
	if req.Photo != "" {
		student.Photo = &req.Photo
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Int64("branchId", student.BranchID).Msg("Student registered")
	return student, nil
}

// GetAllByBranch returns the students of a branch.
func (s *StudentService) GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Student, error) {
	return s.studentRepo.GetAllByBranch(ctx, branchID)
}

// GetByID returns a single student.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Update applies the non-empty fields of the request to the student.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		student.FullName = req.FullName
	}
	if req.Gender != "" {
		student.Gender = req.Gender
	}
	if req.RegistrationNumber != "" {
		student.RegistrationNumber = req.RegistrationNumber
	}
	if req.ClassName != "" {
		student.ClassName = req.ClassName
	}
	if req.Section != "" {
		student.Section = req.Section
	}
	if req.DateOfBirth != "" {
		if dob, err := helpers.ParseDate(req.DateOfBirth); err == nil {
			student.DateOfBirth = dob
		}
	}
	if req.AdmissionDate != "" {
		if adm, err := helpers.ParseDate(req.AdmissionDate); err == nil {
			student.AdmissionDate = adm
		}
	}
	if req.GuardianID != nil {
		if _, err := s.guardianRepo.GetByID(ctx, *req.GuardianID); err != nil {
			return nil, err
		}
		student.GuardianID = req.GuardianID
	}
	if req.Photo != "" {
		student.Photo = &req.Photo
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student updated")
	return student, nil
}

// Delete removes a student record.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
