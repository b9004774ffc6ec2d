package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/configs"
	activityService "sabeel_backend/internals/features/activitylog/service"
	"sabeel_backend/internals/features/users/controller"
	middlewares "sabeel_backend/internals/middlewares"
	"sabeel_backend/internals/middlewares/auth"
)

// RegisterAuthRoutes mounts the public auth endpoints plus /me. Login
// and register carry their own stricter rate limiters.
func RegisterAuthRoutes(api fiber.Router, db *gorm.DB, al *activityService.ActivityLogService) {
	ctl := controller.NewAuthController(db, al)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	authGroup.Get("/me",
		auth.AuthJWT(auth.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
		ctl.Me,
	)
}
