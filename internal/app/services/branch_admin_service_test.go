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

func TestBranchAdminUpdatePartial(t *testing.T) {
	users := newFakeUserRepo()
	admins := newFakeBranchAdminRepo(users)
	svc := NewBranchAdminService(admins, zerolog.Nop())

	admin := &models.BranchAdmin{FullName: "Ayesha Malik", Salary: 90000, Gender: "Female"}
	user := &models.User{Username: "ba", Email: "ba@school.pk", UserRole: models.RoleBranchAdmin}
	require.NoError(t, admins.CreateWithUser(context.Background(), user, admin))

	newSalary := 95000.0
	updated, err := svc.Update(context.Background(), admin.ID, &dto.UpdateBranchAdminRequest{
		PhoneNumber: "0300-0000000",
		Salary:      &newSalary,
	})
	require.NoError(t, err)
	assert.Equal(t, "0300-0000000", updated.PhoneNumber)
	assert.Equal(t, 95000.0, updated.Salary)
	assert.Equal(t, "Ayesha Malik", updated.FullName)
}

func TestBranchAdminDeleteRemovesAccount(t *testing.T) {
	users := newFakeUserRepo()
	admins := newFakeBranchAdminRepo(users)
	svc := NewBranchAdminService(admins, zerolog.Nop())

	admin := &models.BranchAdmin{FullName: "Ayesha Malik"}
	user := &models.User{Username: "ba", Email: "ba@school.pk", UserRole: models.RoleBranchAdmin}
	require.NoError(t, admins.CreateWithUser(context.Background(), user, admin))

	require.NoError(t, svc.Delete(context.Background(), admin.ID))

	_, err := svc.GetByID(context.Background(), admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrBranchAdminNotFound)
	_, err = users.GetUserByEmail(context.Background(), "ba@school.pk")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestBranchAdminUpdateUnknown(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewBranchAdminService(newFakeBranchAdminRepo(users), zerolog.Nop())

	_, err := svc.Update(context.Background(), 42, &dto.UpdateBranchAdminRequest{FullName: "X"})
	assert.ErrorIs(t, err, apperrors.ErrBranchAdminNotFound)
}
