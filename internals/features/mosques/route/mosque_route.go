package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/constants"
	activityService "sabeel_backend/internals/features/activitylog/service"
	"sabeel_backend/internals/features/mosques/controller"
	"sabeel_backend/internals/middlewares/auth"
)

// RegisterMosqueRoutes mounts the mosque CRUD + rescore endpoints.
// Reads are open to any authenticated role; writes are operator-only.
func RegisterMosqueRoutes(api fiber.Router, db *gorm.DB, al *activityService.ActivityLogService) {
	ctl := controller.NewMosqueController(db, al)

	mosques := api.Group("/mosques")
	mosques.Get("/", ctl.Index)
	mosques.Get("/active-count", ctl.ActiveCount)
	mosques.Get("/:id", ctl.Show)

	operatorOnly := auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor)
	mosques.Post("/", operatorOnly, ctl.Create)
	mosques.Put("/:id", operatorOnly, ctl.Update)
	mosques.Delete("/:id", auth.RequireRoles(constants.RoleAdmin), ctl.Destroy)
	mosques.Post("/:id/rescore", operatorOnly, ctl.Rescore)
}
