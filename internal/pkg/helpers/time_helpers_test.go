package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("garbage", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestParseDateAcceptsBothForms(t *testing.T) {
	plain, err := ParseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, plain.Year())
	assert.Equal(t, time.March, plain.Month())

	rfc, err := ParseDate("2026-03-01T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, rfc.Hour())

	_, err = ParseDate("01/03/2026")
	assert.Error(t, err)
}
