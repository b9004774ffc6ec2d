package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/constants"
	"sabeel_backend/internals/features/activitylog/controller"
	"sabeel_backend/internals/middlewares/auth"
)

func RegisterActivityLogRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewActivityLogController(db)

	logs := api.Group("/activity-logs", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor))
	logs.Get("/", ctl.Index)
}
