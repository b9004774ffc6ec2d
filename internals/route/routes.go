package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sabeel_backend/internals/configs"
	activityRoute "sabeel_backend/internals/features/activitylog/route"
	activityService "sabeel_backend/internals/features/activitylog/service"
	dashboardRoute "sabeel_backend/internals/features/dashboard/route"
	deliveryRoute "sabeel_backend/internals/features/deliveries/route"
	deliveryService "sabeel_backend/internals/features/deliveries/service"
	mosqueRoute "sabeel_backend/internals/features/mosques/route"
	mosqueService "sabeel_backend/internals/features/mosques/service"
	notifyService "sabeel_backend/internals/features/notifications/service"
	requestRoute "sabeel_backend/internals/features/requests/route"
	requestService "sabeel_backend/internals/features/requests/service"
	truckRoute "sabeel_backend/internals/features/trucks/route"
	userRoute "sabeel_backend/internals/features/users/route"
	"sabeel_backend/internals/middlewares/auth"
)

// SetupRoutes wires the shared services once and mounts every feature
// under /api. Everything except /api/auth/register and /api/auth/login
// sits behind JWT auth.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	activityLog := activityService.NewActivityLogService(db)
	notifications := notifyService.NewNotificationService(nil)
	needScores := mosqueService.NewNeedScoreService(db)
	requests := requestService.NewNeedRequestService(db, activityLog, notifications)
	deliveries := deliveryService.NewDeliveryService(db, needScores, requests, activityLog, notifications)

	api := app.Group("/api")

	userRoute.RegisterAuthRoutes(api, db, activityLog)

	protected := api.Group("", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	mosqueRoute.RegisterMosqueRoutes(protected, db, activityLog)
	requestRoute.RegisterNeedRequestRoutes(protected, db, requests)
	deliveryRoute.RegisterDeliveryRoutes(protected, db, deliveries)
	truckRoute.RegisterTruckRoutes(protected, db, activityLog)
	activityRoute.RegisterActivityLogRoutes(protected, db)
	dashboardRoute.RegisterDashboardRoutes(protected, db)
}
