package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityModel "sabeel_backend/internals/features/activitylog/model"
	deliveryModel "sabeel_backend/internals/features/deliveries/model"
	mosqueModel "sabeel_backend/internals/features/mosques/model"
	requestModel "sabeel_backend/internals/features/requests/model"
	truckModel "sabeel_backend/internals/features/trucks/model"
	helper "sabeel_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard/stats
// One aggregate payload for the operations overview page.
func (ctl *DashboardController) Stats(c *fiber.Ctx) error {
	var (
		totalMosques     int64
		activeMosques    int64
		highNeedMosques  int64
		pendingRequests  int64
		activeDeliveries int64
		activeTrucks     int64
		litersDelivered  *int64
	)

	if err := ctl.DB.Model(&mosqueModel.MosqueModel{}).Count(&totalMosques).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load dashboard stats")
	}
	if err := ctl.DB.Model(&mosqueModel.MosqueModel{}).
		Where("mosque_is_active = ?", true).Count(&activeMosques).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load dashboard stats")
	}
	if err := ctl.DB.Model(&mosqueModel.MosqueModel{}).
		Where("mosque_need_level = ?", mosqueModel.NeedLevelHigh).Count(&highNeedMosques).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load dashboard stats")
	}
	if err := ctl.DB.Model(&requestModel.NeedRequestModel{}).
		Where("need_request_status = ?", requestModel.NeedRequestStatusPending).Count(&pendingRequests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load dashboard stats")
	}
	if err := ctl.DB.Model(&deliveryModel.DeliveryModel{}).
		Where("delivery_status IN ?", []deliveryModel.DeliveryStatus{
			deliveryModel.DeliveryStatusPending,
			deliveryModel.DeliveryStatusInTransit,
		}).Count(&activeDeliveries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load dashboard stats")
	}
	if err := ctl.DB.Model(&truckModel.TruckModel{}).
		Where("truck_status = ?", truckModel.TruckStatusActive).Count(&activeTrucks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load dashboard stats")
	}
	if err := ctl.DB.Model(&deliveryModel.DeliveryModel{}).
		Select("SUM(delivery_liters_delivered)").
		Where("delivery_status = ?", deliveryModel.DeliveryStatusDelivered).
		Scan(&litersDelivered).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load dashboard stats")
	}

	var recent []activityModel.ActivityLogModel
	if err := ctl.DB.Order("activity_log_created_at DESC").Limit(10).Find(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load recent activity")
	}

	totalLiters := int64(0)
	if litersDelivered != nil {
		totalLiters = *litersDelivered
	}

	return helper.JsonOK(c, "dashboard stats fetched", fiber.Map{
		"total_mosques":          totalMosques,
		"active_mosques":         activeMosques,
		"high_need_mosques":      highNeedMosques,
		"pending_need_requests":  pendingRequests,
		"active_deliveries":      activeDeliveries,
		"active_trucks":          activeTrucks,
		"total_liters_delivered": totalLiters,
		"recent_activity":        recent,
	})
}
