package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/constants"
	activityService "sabeel_backend/internals/features/activitylog/service"
	"sabeel_backend/internals/features/trucks/controller"
	"sabeel_backend/internals/middlewares/auth"
)

// RegisterTruckRoutes mounts fleet management endpoints. Location pings
// are open to drivers; everything else that writes is operator-only.
func RegisterTruckRoutes(api fiber.Router, db *gorm.DB, al *activityService.ActivityLogService) {
	ctl := controller.NewTruckController(db, al)

	trucks := api.Group("/trucks")
	trucks.Get("/", ctl.Index)
	trucks.Get("/:id", ctl.Show)
	trucks.Patch("/:id/location", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor, constants.RoleDriver), ctl.UpdateLocation)

	operatorOnly := auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor)
	trucks.Post("/", operatorOnly, ctl.Create)
	trucks.Put("/:id", operatorOnly, ctl.Update)
	trucks.Delete("/:id", operatorOnly, ctl.Destroy)
}
