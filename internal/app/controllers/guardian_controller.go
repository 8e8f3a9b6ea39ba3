package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/app/services"
	"github.com/hamzak/maktab/internal/middleware"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/filestorage"
	"github.com/rs/zerolog"
)

// GuardianController handles guardian record operations
type GuardianController struct {
	guardianService *services.GuardianService
	photoStorage    filestorage.PhotoStorage
	logger          zerolog.Logger
}

// NewGuardianController creates a new GuardianController
func NewGuardianController(guardianService *services.GuardianService, photoStorage filestorage.PhotoStorage, logger zerolog.Logger) *GuardianController {
	return &GuardianController{
		guardianService: guardianService,
		photoStorage:    photoStorage,
		logger:          logger,
	}
}

// Create registers a guardian
func (c *GuardianController) Create(ctx *gin.Context) {
	var req dto.CreateGuardianRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid guardian create form")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	filename, err := c.savePhoto(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	req.Photo = filename

	guardian, err := c.guardianService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if filename != "" {
			_ = c.photoStorage.DeletePhoto("guardian", filename)
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Guardian registered successfully", guardian))
}

// GetAll returns the guardians of a branch
func (c *GuardianController) GetAll(ctx *gin.Context) {
	branchID, err := parseBranchIDQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	guardians, err := c.guardianService.GetAllByBranch(ctx.Request.Context(), branchID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Guardians fetched successfully", guardians))
}

// GetByID returns a single guardian
func (c *GuardianController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrGuardianNotFound)
		return
	}

	guardian, err := c.guardianService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Guardian fetched successfully", guardian))
}

// Update applies guardian changes, optionally replacing the photo
func (c *GuardianController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrGuardianNotFound)
		return
	}

	var req dto.UpdateGuardianRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	filename, err := c.savePhoto(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	req.Photo = filename

	guardian, err := c.guardianService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if filename != "" {
			_ = c.photoStorage.DeletePhoto("guardian", filename)
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Guardian updated successfully", guardian))
}

// Delete removes a guardian record
func (c *GuardianController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrGuardianNotFound)
		return
	}

	if err := c.guardianService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Guardian deleted successfully", nil))
}

func (c *GuardianController) savePhoto(ctx *gin.Context) (string, error) {
	fileHeader, err := ctx.FormFile(photoFormField)
	if err != nil {
		return "", nil
	}
	return c.photoStorage.SavePhoto(fileHeader, "guardian")
}
