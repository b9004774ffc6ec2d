package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runWithLocals executes fn inside a handler after seeding the locals
// the auth middleware would set.
func runWithLocals(t *testing.T, locals map[string]any, fn func(c *fiber.Ctx)) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		fn(c)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetUserIDFromToken(t *testing.T) {
	want := uuid.New()
	runWithLocals(t, map[string]any{LocUserID: want.String()}, func(c *fiber.Ctx) {
		got, err := GetUserIDFromToken(c)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	runWithLocals(t, nil, func(c *fiber.Ctx) {
		_, err := GetUserIDFromToken(c)
		assert.Error(t, err)
	})

	runWithLocals(t, map[string]any{LocUserID: "not-a-uuid"}, func(c *fiber.Ctx) {
		_, err := GetUserIDFromToken(c)
		assert.Error(t, err)
	})
}

func TestRoleChecks(t *testing.T) {
	cases := []struct {
		role     string
		admin    bool
		operator bool
	}{
		{"admin", true, true},
		{"logistics_supervisor", false, true},
		{"mosque_admin", false, false},
		{"driver", false, false},
		{"donor", false, false},
		{"", false, false},
	}
	for _, tc := range cases {
		runWithLocals(t, map[string]any{LocUserRole: tc.role}, func(c *fiber.Ctx) {
			assert.Equalf(t, tc.role, GetUserRole(c), "role=%q", tc.role)
			assert.Equalf(t, tc.admin, IsAdmin(c), "role=%q", tc.role)
			assert.Equalf(t, tc.operator, IsOperator(c), "role=%q", tc.role)
		})
	}

	// No role local at all reads as unauthenticated.
	runWithLocals(t, nil, func(c *fiber.Ctx) {
		assert.Equal(t, "", GetUserRole(c))
		assert.False(t, IsAdmin(c))
		assert.False(t, IsOperator(c))
	})
}
