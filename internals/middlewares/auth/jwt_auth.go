package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "sabeel_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use the access_token cookie when no Bearer header
}

// AuthJWT verifies the bearer token and hydrates user_id / user_role locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals("jwt_claims", claims)

		if s, ok := claims["sub"].(string); ok && strings.TrimSpace(s) != "" {
			c.Locals(helper.LocUserID, strings.TrimSpace(s))
		} else if s, ok := claims["user_id"].(string); ok && strings.TrimSpace(s) != "" {
			c.Locals(helper.LocUserID, strings.TrimSpace(s))
		}
		if s, ok := claims["role"].(string); ok {
			c.Locals(helper.LocUserRole, strings.TrimSpace(s))
		}

		return c.Next()
	}
}

// RequireRoles rejects actors whose role is not in the allow list.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if _, ok := allowed[role]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}
