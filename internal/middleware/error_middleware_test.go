package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hamzak/maktab/internal/app/models/dto"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleErrorAndDecode(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleAPIErrorValidation(t *testing.T) {
	code, resp := handleErrorAndDecode(t, apperrors.NewValidationError("gender", "password"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing fields: gender, password", resp.Message)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperrors.ErrInvalidCredentials, http.StatusBadRequest},
		{apperrors.ErrUserAlreadyExists, http.StatusBadRequest},
		{apperrors.ErrInvalidResetToken, http.StatusBadRequest},
		{apperrors.ErrUserNotFound, http.StatusNotFound},
		{apperrors.ErrBranchAdminNotFound, http.StatusNotFound},
		{apperrors.ErrBranchNotFound, http.StatusNotFound},
		{apperrors.ErrStaffNotFound, http.StatusNotFound},
		{apperrors.ErrStudentNotFound, http.StatusNotFound},
		{apperrors.ErrGuardianNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		code, resp := handleErrorAndDecode(t, tc.err)
		assert.Equal(t, tc.want, code, "error %v", tc.err)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	}
}

func TestHandleAPIErrorUnknownIsServerError(t *testing.T) {
	code, resp := handleErrorAndDecode(t, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Server error", resp.Message)
}

func TestHandleAPIErrorWrappedNotFound(t *testing.T) {
	wrapped := errors.Join(errors.New("loading profile"), apperrors.ErrBranchAdminNotFound)
	code, _ := handleErrorAndDecode(t, wrapped)

	assert.Equal(t, http.StatusNotFound, code)
}
