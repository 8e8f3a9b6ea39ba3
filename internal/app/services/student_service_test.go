package services

import (
	"context"
	"testing"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentServiceFixture(t *testing.T) (*StudentService, *GuardianService, *models.Branch) {
	t.Helper()
	students := newFakeStudentRepo()
	guardians := newFakeGuardianRepo()
	branches := newFakeBranchRepo()

	branch := &models.Branch{BranchName: "Gulberg Campus", BranchType: "School"}
	require.NoError(t, branches.Create(context.Background(), branch))

	studentSvc := NewStudentService(students, guardians, branches, zerolog.Nop())
	guardianSvc := NewGuardianService(guardians, branches, zerolog.Nop())
	return studentSvc, guardianSvc, branch
}

func TestCreateStudentWithGuardian(t *testing.T) {
	studentSvc, guardianSvc, branch := newStudentServiceFixture(t)

	guardian, err := guardianSvc.Create(context.Background(), &dto.CreateGuardianRequest{
		FullName:    "Imran Siddiqui",
		CnicNumber:  "35202-9999999-5",
		PhoneNumber: "0321-9999999",
		Address:     "7 Canal View, Lahore",
		Relation:    "Father",
		Occupation:  "Shopkeeper",
		BranchID:    branch.ID,
	})
	require.NoError(t, err)

	student, err := studentSvc.Create(context.Background(), &dto.CreateStudentRequest{
		FullName:           "Hassan Siddiqui",
		DateOfBirth:        "2015-06-12",
		Gender:             "Male",
		RegistrationNumber: "REG-2026-001",
		ClassName:          "Grade 5",
		Section:            "A",
		AdmissionDate:      "2026-04-01",
		BranchID:           branch.ID,
		GuardianID:         &guardian.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, branch.ID, student.BranchID)
	require.NotNil(t, student.GuardianID)
	assert.Equal(t, guardian.ID, *student.GuardianID)
	assert.Equal(t, 2015, student.DateOfBirth.Year())
}

func TestCreateStudentUnknownGuardian(t *testing.T) {
	studentSvc, _, branch := newStudentServiceFixture(t)
	guardianID := int64(77)

	_, err := studentSvc.Create(context.Background(), &dto.CreateStudentRequest{
		FullName:           "Hassan Siddiqui",
		DateOfBirth:        "2015-06-12",
		Gender:             "Male",
		RegistrationNumber: "REG-2026-001",
		ClassName:          "Grade 5",
		BranchID:           branch.ID,
		GuardianID:         &guardianID,
	})
	assert.ErrorIs(t, err, apperrors.ErrGuardianNotFound)
}

func TestCreateStudentInvalidDateOfBirth(t *testing.T) {
	studentSvc, _, branch := newStudentServiceFixture(t)

	_, err := studentSvc.Create(context.Background(), &dto.CreateStudentRequest{
		FullName:           "Hassan Siddiqui",
		DateOfBirth:        "last tuesday",
		Gender:             "Male",
		RegistrationNumber: "REG-2026-001",
		ClassName:          "Grade 5",
		BranchID:           branch.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentsScopedToBranch(t *testing.T) {
	studentSvc, _, branch := newStudentServiceFixture(t)

	_, err := studentSvc.Create(context.Background(), &dto.CreateStudentRequest{
		FullName:           "Hassan Siddiqui",
		DateOfBirth:        "2015-06-12",
		Gender:             "Male",
		RegistrationNumber: "REG-2026-001",
		ClassName:          "Grade 5",
		BranchID:           branch.ID,
	})
	require.NoError(t, err)

	inBranch, err := studentSvc.GetAllByBranch(context.Background(), branch.ID)
	require.NoError(t, err)
	assert.Len(t, inBranch, 1)

	other, err := studentSvc.GetAllByBranch(context.Background(), branch.ID+1)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGuardianUpdatePartial(t *testing.T) {
	_, guardianSvc, branch := newStudentServiceFixture(t)

	guardian, err := guardianSvc.Create(context.Background(), &dto.CreateGuardianRequest{
		FullName:    "Imran Siddiqui",
		CnicNumber:  "35202-9999999-5",
		PhoneNumber: "0321-9999999",
		Relation:    "Father",
		BranchID:    branch.ID,
	})
	require.NoError(t, err)

	updated, err := guardianSvc.Update(context.Background(), guardian.ID, &dto.UpdateGuardianRequest{
		Occupation: "Trader",
	})
	require.NoError(t, err)
	assert.Equal(t, "Trader", updated.Occupation)
	assert.Equal(t, "Imran Siddiqui", updated.FullName)
}

func TestGuardianMissingFields(t *testing.T) {
	_, guardianSvc, branch := newStudentServiceFixture(t)

	_, err := guardianSvc.Create(context.Background(), &dto.CreateGuardianRequest{
		FullName: "Imran Siddiqui",
		BranchID: branch.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "Missing fields: cnicNumber, phoneNumber, relation", err.Error())
}

func TestGuardianMalformedCnicRejected(t *testing.T) {
	_, guardianSvc, branch := newStudentServiceFixture(t)

	_, err := guardianSvc.Create(context.Background(), &dto.CreateGuardianRequest{
		FullName:    "Imran Siddiqui",
		CnicNumber:  "not-a-cnic",
		PhoneNumber: "0321-9999999",
		Relation:    "Father",
		BranchID:    branch.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
