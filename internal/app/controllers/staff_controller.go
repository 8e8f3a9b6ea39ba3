package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/services"
	"github.com/hamzak/maktab/internal/middleware"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// photoFormField is the multipart field name the admin clients upload under.
const photoFormField = "photo"

// StaffController handles staff operations. Create and update arrive as
// multipart forms since they can carry a photo.
type StaffController struct {
	staffService *services.StaffService
	photoStorage filestorage.PhotoStorage
	logger       zerolog.Logger
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService, photoStorage filestorage.PhotoStorage, logger zerolog.Logger) *StaffController {
	return &StaffController{
		staffService: staffService,
		photoStorage: photoStorage,
		logger:       logger,
	}
}

// Create registers a staff member with a login account
// @Summary Register a staff member
// @Tags staff
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=dto.CreateStaffResponse}
// @Router /staff/create [post]
func (c *StaffController) Create(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid staff create form")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	filename, err := c.savePhoto(ctx, "staff")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	req.Photo = filename

	resp, err := c.staffService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if filename != "" {
			// Creation failed, drop the file we just wrote.
			_ = c.photoStorage.DeletePhoto("staff", filename)
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Staff member registered successfully", resp))
}

// GetAll returns the staff of a branch
func (c *StaffController) GetAll(ctx *gin.Context) {
	branchID, err := parseBranchIDQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	staff, err := c.staffService.GetAllByBranch(ctx.Request.Context(), branchID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Staff fetched successfully", staff))
}

// GetByID returns a single staff member
func (c *StaffController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStaffNotFound)
		return
	}

	staff, err := c.staffService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Staff member fetched successfully", staff))
}

// Update applies staff changes, optionally replacing the photo
func (c *StaffController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStaffNotFound)
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	filename, err := c.savePhoto(ctx, "staff")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	req.Photo = filename

	staff, err := c.staffService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if filename != "" {
			_ = c.photoStorage.DeletePhoto("staff", filename)
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Staff member updated successfully", staff))
}

// Delete removes a staff member and its account
func (c *StaffController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStaffNotFound)
		return
	}

	if err := c.staffService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Staff member deleted successfully", nil))
}

// savePhoto stores an uploaded photo if one was included. A missing file is
// not an error; photos are optional on every form.
func (c *StaffController) savePhoto(ctx *gin.Context, role string) (string, error) {
	fileHeader, err := ctx.FormFile(photoFormField)
	if err != nil {
		return "", nil
	}
	return c.photoStorage.SavePhoto(fileHeader, role)
}

// parseBranchIDQuery reads the mandatory branchId query parameter.
func parseBranchIDQuery(ctx *gin.Context) (int64, error) {
	raw := ctx.Query("branchId")
	if raw == "" {
		return 0, apperrors.NewValidationError("branchId")
	}
	branchID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("branchId")
	}
	return branchID, nil
}
