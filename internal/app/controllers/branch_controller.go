package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/services"
	"github.com/hamzak/maktab/internal/middleware"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// BranchController handles branch and branch settings operations
type BranchController struct {
	branchService *services.BranchService
	logger        zerolog.Logger
}

// NewBranchController creates a new BranchController
func NewBranchController(branchService *services.BranchService, logger zerolog.Logger) *BranchController {
	return &BranchController{
		branchService: branchService,
		logger:        logger,
	}
}

// Create registers a new branch
// @Summary Create a branch
// @Tags branch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBranchRequest true "Branch information"
// @Success 201 {object} dto.APIResponse{data=models.Branch}
// @Router /branch/create [post]
func (c *BranchController) Create(ctx *gin.Context) {
	var req dto.CreateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid branch create payload")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	branch, err := c.branchService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Branch created successfully", branch))
}

// GetAll returns every branch
func (c *BranchController) GetAll(ctx *gin.Context) {
	branches, err := c.branchService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branches fetched successfully", branches))
}

// GetByID returns a single branch
func (c *BranchController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchNotFound)
		return
	}

	branch, err := c.branchService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch fetched successfully", branch))
}

// Update applies branch changes
func (c *BranchController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchNotFound)
		return
	}

	var req dto.UpdateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	branch, err := c.branchService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch updated successfully", branch))
}

// Assign links a branch to a branch admin, or clears the link
// @Summary Assign a branch
// @Tags branch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Param request body dto.AssignBranchRequest true "Branch admin to assign; null clears"
// @Success 200 {object} dto.APIResponse{data=models.Branch}
// @Router /branch/assign/{id} [put]
func (c *BranchController) Assign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchNotFound)
		return
	}

	var req dto.AssignBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("branchAdminId"))
		return
	}

	branch, err := c.branchService.Assign(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch assigned successfully", branch))
}

// Delete removes a branch
func (c *BranchController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchNotFound)
		return
	}

	if err := c.branchService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch deleted successfully", nil))
}

// GetSettings returns the settings of a branch
func (c *BranchController) GetSettings(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchNotFound)
		return
	}

	setting, err := c.branchService.GetSettings(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch settings fetched successfully", setting))
}

// UpdateSettings upserts the settings of a branch
func (c *BranchController) UpdateSettings(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBranchNotFound)
		return
	}

	var req dto.UpdateBranchSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	setting, err := c.branchService.UpdateSettings(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Branch settings updated successfully", setting))
}
