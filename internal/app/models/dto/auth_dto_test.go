package dto

import (
	"encoding/json"
	"testing"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginResponseFlattensContext(t *testing.T) {
	resp := LoginResponse{
		Token: "token-value",
		User:  &models.PublicUser{ID: 3, Username: "ba", UserRole: models.RoleBranchAdmin},
		Context: map[string]interface{}{
			"branchAdmin":   map[string]interface{}{"fullName": "Ayesha Malik"},
			"branch":        nil,
			"branchSetting": nil,
			"branchId":      nil,
		},
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "token-value", out["token"])
	assert.NotNil(t, out["user"])
	assert.NotNil(t, out["branchAdmin"])

	// Null context keys must be serialized, not dropped: clients distinguish
	// "no branch assigned" from "field missing".
	for _, key := range []string{"branch", "branchSetting", "branchId"} {
		v, present := out[key]
		assert.True(t, present, "expected key %q in response", key)
		assert.Nil(t, v)
	}
}

func TestLoginResponseWithoutContext(t *testing.T) {
	resp := LoginResponse{
		Token: "token-value",
		User:  &models.PublicUser{ID: 1, UserRole: models.RoleSuperAdmin},
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Len(t, out, 2)
	assert.Contains(t, out, "token")
	assert.Contains(t, out, "user")
}
