package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/constants"
	"sabeel_backend/internals/features/requests/controller"
	"sabeel_backend/internals/features/requests/service"
	"sabeel_backend/internals/middlewares/auth"
)

// RegisterNeedRequestRoutes mounts the request workflow endpoints.
// Mosque admins file requests; approval stays with operators.
func RegisterNeedRequestRoutes(api fiber.Router, db *gorm.DB, svc *service.NeedRequestService) {
	ctl := controller.NewNeedRequestController(db, svc)

	requests := api.Group("/need-requests")
	requests.Get("/my-mosque", auth.RequireRoles(constants.RoleMosqueAdmin), ctl.MyMosque)
	requests.Get("/mosque/:mosqueId", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor), ctl.GetByMosque)
	requests.Get("/", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor), ctl.Index)
	requests.Get("/:id", ctl.Show)
	requests.Post("/", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor, constants.RoleMosqueAdmin), ctl.Store)
	requests.Post("/:id/approve", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor), ctl.Approve)
	requests.Post("/:id/reject", auth.RequireRoles(constants.RoleAdmin, constants.RoleLogisticsSupervisor), ctl.Reject)
}
