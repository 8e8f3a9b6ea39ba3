package services

import (
	"context"
	"errors"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/app/repositories"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// RoleContextResolver assembles the role-specific portion of a login
// response. Every key the resolver returns is flattened into the top level
// of the response payload, so resolvers must include keys explicitly even
// when their value is null.
type RoleContextResolver interface {
	Resolve(ctx context.Context, user *models.User) (map[string]interface{}, error)
}

// roleContextRegistry maps a user role to its context resolver. Roles with
// no entry produce a login response with only the token and user fields.
type roleContextRegistry map[models.RoleType]RoleContextResolver

func (r roleContextRegistry) resolve(ctx context.Context, user *models.User) (map[string]interface{}, error) {
	resolver, ok := r[user.UserRole]
	if !ok {
		return nil, nil
	}
	return resolver.Resolve(ctx, user)
}

// branchAdminContextResolver loads the branch admin profile, the branch
// assigned to it and that branch's settings. Missing pieces are filled with
// nulls rather than treated as errors: a freshly registered branch admin has
// no branch yet and must still be able to log in.
type branchAdminContextResolver struct {
	branchAdminRepo repositories.IBranchAdminRepository
	branchRepo      repositories.IBranchRepository
	settingRepo     repositories.IBranchSettingRepository
	logger          zerolog.Logger
}

func newBranchAdminContextResolver(
	branchAdminRepo repositories.IBranchAdminRepository,
	branchRepo repositories.IBranchRepository,
	settingRepo repositories.IBranchSettingRepository,
	logger zerolog.Logger,
) *branchAdminContextResolver {
	return &branchAdminContextResolver{
		branchAdminRepo: branchAdminRepo,
		branchRepo:      branchRepo,
		settingRepo:     settingRepo,
		logger:          logger,
	}
}

func (r *branchAdminContextResolver) Resolve(ctx context.Context, user *models.User) (map[string]interface{}, error) {
	roleContext := map[string]interface{}{
		"branchAdmin":   nil,
		"branch":        nil,
		"branchSetting": nil,
		"branchId":      nil,
	}

	admin, err := r.branchAdminRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBranchAdminNotFound) {
			r.logger.Warn().Int64("userId", user.ID).Msg("Branch admin user has no profile row")
			return roleContext, nil
		}
		return nil, err
	}
	roleContext["branchAdmin"] = admin

	branch, err := r.branchRepo.GetByAssignedTo(ctx, admin.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBranchNotFound) {
			return roleContext, nil
		}
		return nil, err
	}
	roleContext["branch"] = branch
	roleContext["branchId"] = branch.ID

	setting, err := r.settingRepo.GetByBranchID(ctx, branch.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchSettingNotFound) {
			return roleContext, nil
		}
		return nil, err
	}
	roleContext["branchSetting"] = setting

	return roleContext, nil
}
