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

// StudentController handles student record operations
type StudentController struct {
	studentService *services.StudentService
	photoStorage   filestorage.PhotoStorage
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, photoStorage filestorage.PhotoStorage, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		photoStorage:   photoStorage,
		logger:         logger,
	}
}

// Create registers a student
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student create form")
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("body"))
		return
	}

	filename, err := c.savePhoto(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	req.Photo = filename

	student, err := c.studentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if filename != "" {
			_ = c.photoStorage.DeletePhoto("student", filename)
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Student registered successfully", student))
}

// GetAll returns the students of a branch
func (c *StudentController) GetAll(ctx *gin.Context) {
	branchID, err := parseBranchIDQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, err := c.studentService.GetAllByBranch(ctx.Request.Context(), branchID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Students fetched successfully", students))
}

// GetByID returns a single student
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student fetched successfully", student))
}

// Update applies student changes, optionally replacing the photo
func (c *StudentController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	var req dto.UpdateStudentRequest
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

	student, err := c.studentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if filename != "" {
			_ = c.photoStorage.DeletePhoto("student", filename)
		}
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student updated successfully", student))
}

// Delete removes a student record
func (c *StudentController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student deleted successfully", nil))
}

func (c *StudentController) savePhoto(ctx *gin.Context) (string, error) {
	fileHeader, err := ctx.FormFile(photoFormField)
	if err != nil {
		return "", nil
	}
	return c.photoStorage.SavePhoto(fileHeader, "student")
}
