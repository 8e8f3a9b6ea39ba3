package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

// HandleAPIError translates service errors into the response envelope. It is
// the single place where the error taxonomy maps onto status codes, so every
// controller funnels its errors through here.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(validationErr.Error(), nil))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid email or password", nil))
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("User already exists", nil))
	case errors.Is(err, apperrors.ErrInvalidResetToken):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid or expired reset token", nil))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found", nil))
	case errors.Is(err, apperrors.ErrBranchAdminNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Branch admin not found", nil))
	case errors.Is(err, apperrors.ErrBranchNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Branch not found", nil))
	case errors.Is(err, apperrors.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Staff member not found", nil))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found", nil))
	case errors.Is(err, apperrors.ErrGuardianNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Guardian not found", nil))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Server error", nil))
	}
}
