package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/constants"
	"sabeel_backend/internals/features/dashboard/controller"
	"sabeel_backend/internals/middlewares/auth"
)

func RegisterDashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)

	dashboard := api.Group("/dashboard", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor))
	dashboard.Get("/stats", ctl.Stats)
}
