package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
)

// GetUserIDFromToken returns the authenticated actor id.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, errors.New("user id missing from token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, errors.New("user id in token is not a valid uuid")
	}
	return id, nil
}

// GetUserRole returns the actor role string ("" when unauthenticated).
func GetUserRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserRole).(string); ok {
		return s
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == "admin"
}

// IsOperator covers the roles allowed to create/advance deliveries.
func IsOperator(c *fiber.Ctx) bool {
	role := GetUserRole(c)
	return role == "admin" || role == "logistics_supervisor"
}
