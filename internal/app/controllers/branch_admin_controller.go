package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/services"
	"github.com/hamzak/maktab/internal/middleware"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// BranchAdminController handles branch admin profile operations
type BranchAdminController struct {
	branchAdminService *services.BranchAdminService
	logger             zerolog.Logger
}

// NewBranchAdminController creates a new BranchAdminController
func NewBranchAdminController(branchAdminService *services.BranchAdminService, logger zerolog.Logger) *BranchAdminController {
	return &BranchAdminController{
		branchAdminService: branchAdminService,
		logger:             logger,
	}
}

// GetAll returns every branch admin with its linked account
// @Summary List branch admins
// @Tags branch-admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.BranchAdmin}
// @Router /branch-admin/get-all-branch-admins [get]
func (c *BranchAdminController) GetAll(ctx *gin.Context) {
	admins, err := c.branchAdminService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch admins fetched successfully", admins))
}

// GetByID returns a single branch admin
func (c *BranchAdminController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchAdminNotFound)
		return
	}

	admin, err := c.branchAdminService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch admin fetched successfully", admin))
}

// Update applies profile changes
func (c *BranchAdminController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchAdminNotFound)
		return
	}

	var req dto.UpdateBranchAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid branch admin update payload")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	admin, err := c.branchAdminService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch admin updated successfully", admin))
}

// Delete removes the branch admin and its account
func (c *BranchAdminController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchAdminNotFound)
		return
	}

	if err := c.branchAdminService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch admin deleted successfully", nil))
}

// parseIDParam reads a numeric path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}
