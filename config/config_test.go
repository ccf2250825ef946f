package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetStringFallsBackWhenMissing(t *testing.T) {
	c := map[string]string{"PORT": "9090"}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(c, "OTHER_PORT", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetIntRejectsNonNumeric(t *testing.T) {
	c := map[string]string{"RETRIES": "3", "BROKEN": "three"}

	assert.Equal(t, 3, GetInt(c, "RETRIES", 5))
	assert.Equal(t, 5, GetInt(c, "BROKEN", 5))
	assert.Equal(t, 5, GetInt(c, "MISSING", 5))
}

func TestGetBoolAcceptsCommonSpellings(t *testing.T) {
	c := map[string]string{"A": "true", "B": "1", "C": "FALSE", "D": "yes"}

	assert.True(t, GetBool(c, "A", false))
	assert.True(t, GetBool(c, "B", false))
	assert.False(t, GetBool(c, "C", true))
	// "yes" is not a ParseBool spelling; the default wins
	assert.True(t, GetBool(c, "D", true))
	assert.False(t, GetBool(c, "MISSING", false))
}

func TestGetDurationWantsAUnit(t *testing.T) {
	c := map[string]string{"CACHE_TTL": "90s", "BARE": "90"}

	assert.Equal(t, 90*time.Second, GetDuration(c, "CACHE_TTL", time.Minute))
	assert.Equal(t, time.Minute, GetDuration(c, "BARE", time.Minute))
	assert.Equal(t, time.Minute, GetDuration(c, "MISSING", time.Minute))
}
