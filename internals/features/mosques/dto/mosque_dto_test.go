package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWaterLevels(t *testing.T) {
	// Level above capacity fails on the level field; the required level
	// then cannot fit the (negative) remaining space either.
	errs := ValidateWaterLevels(100, 500, 80)
	assert.Contains(t, errs, "mosque_current_water_level")
	assert.Contains(t, errs, "mosque_required_water_level")

	// Required level larger than the free space fails alone.
	errs = ValidateWaterLevels(1000, 400, 700)
	assert.NotContains(t, errs, "mosque_current_water_level")
	assert.Contains(t, errs, "mosque_required_water_level")

	// Boundary: level at capacity is fine as long as nothing more is
	// required; required exactly equal to the free space is fine too.
	assert.Nil(t, ValidateWaterLevels(1000, 1000, 0))
	assert.Nil(t, ValidateWaterLevels(1000, 400, 600))
	assert.Nil(t, ValidateWaterLevels(1000, 0, 1000))

	errs = ValidateWaterLevels(1000, 1000, 1)
	assert.Contains(t, errs, "mosque_required_water_level")
}
