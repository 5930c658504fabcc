package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-04-01"))
	assert.Error(t, ValidateDate("2025-4-1"))
	assert.Error(t, ValidateDate("04/01/2025"))
	assert.Error(t, ValidateDate("2025-02-30"))
	assert.Error(t, ValidateDate(""))
}

func TestValidateClock(t *testing.T) {
	assert.NoError(t, ValidateClock("09:00"))
	assert.NoError(t, ValidateClock("23:59"))
	assert.Error(t, ValidateClock("9:00"))
	assert.Error(t, ValidateClock("25:00"))
	assert.Error(t, ValidateClock("9am"))
}

func TestValidateTripName(t *testing.T) {
	assert.NoError(t, ValidateTripName("Tokyo2025"))
	assert.NoError(t, ValidateTripName("東京の旅"))

	assert.Error(t, ValidateTripName(""))
	assert.Error(t, ValidateTripName("   "))
	assert.Error(t, ValidateTripName(strings.Repeat("x", 101)))

	// characters Sheets rejects in tab titles
	for _, name := range []string{"a/b", `a\b`, "a:b", "a*b", "a?b", "a[b]"} {
		assert.Error(t, ValidateTripName(name), name)
	}
}
