package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/constants"
	"sabeel_backend/internals/features/deliveries/controller"
	"sabeel_backend/internals/features/deliveries/service"
	"sabeel_backend/internals/middlewares/auth"
)

// RegisterDeliveryRoutes mounts the delivery workflow endpoints.
// Drivers can advance status and attach proof; creation is operator-only.
func RegisterDeliveryRoutes(api fiber.Router, db *gorm.DB, svc *service.DeliveryService) {
	ctl := controller.NewDeliveryController(db, svc)

	deliveries := api.Group("/deliveries")
	deliveries.Get("/", ctl.Index)
	deliveries.Get("/:id", ctl.Show)
	deliveries.Post("/", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor), ctl.Store)
	deliveries.Patch("/:id/status", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor, constants.RoleDriver), ctl.UpdateStatus)
	deliveries.Patch("/:id/proof", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor, constants.RoleDriver), ctl.UpdateProof)
}
