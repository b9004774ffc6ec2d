package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r))
	}
	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("Admin"), "roles are lower case")
}
