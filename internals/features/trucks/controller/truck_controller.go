package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "sabeel_backend/internals/features/activitylog/service"
	"sabeel_backend/internals/features/trucks/dto"
	"sabeel_backend/internals/features/trucks/model"
	helper "sabeel_backend/internals/helpers"
)

type TruckController struct {
	DB          *gorm.DB
	ActivityLog *activityService.ActivityLogService
}

func NewTruckController(db *gorm.DB, al *activityService.ActivityLogService) *TruckController {
	return &TruckController{DB: db, ActivityLog: al}
}

// isDuplicateKeyError catches unique violations both as the translated
// gorm sentinel and as the raw Postgres SQLSTATE, so the 409 path does
// not depend on the driver's error translation setting.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "SQLSTATE 23505")
}

// GET /api/trucks?status=
func (ctl *TruckController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.Model(&model.TruckModel{})
	if status := c.Query("status"); status != "" {
		if !model.IsValidTruckStatus(model.TruckStatus(status)) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown truck status: "+status)
		}
		q = q.Where("truck_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count trucks")
	}

	var trucks []model.TruckModel
	if err := q.Order("truck_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&trucks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list trucks")
	}

	items := make([]dto.TruckResponse, 0, len(trucks))
	for i := range trucks {
		items = append(items, dto.FromModelTruck(&trucks[i]))
	}
	return helper.JsonList(c, "trucks fetched", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/trucks/:id
func (ctl *TruckController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid truck id")
	}

	var truck model.TruckModel
	if err := ctl.DB.First(&truck, "truck_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "truck not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch truck")
	}
	return helper.JsonOK(c, "truck fetched", dto.FromModelTruck(&truck))
}

// POST /api/trucks
func (ctl *TruckController) Create(c *fiber.Ctx) error {
	var req dto.TruckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	truck := model.TruckModel{
		TruckCode:             req.TruckCode,
		TruckName:             req.TruckName,
		TruckCapacity:         req.TruckCapacity,
		TruckStatus:           model.TruckStatusActive,
		TruckAssignedDriverID: req.TruckAssignedDriverID,
	}
	if err := ctl.DB.Create(&truck).Error; err != nil {
		if isDuplicateKeyError(err) {
			return helper.JsonError(c, fiber.StatusConflict, "truck code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create truck")
	}

	actorID, _ := helper.GetUserIDFromToken(c)
	_ = ctl.ActivityLog.LogTruck(
		"تم إضافة شاحنة جديدة: "+truck.TruckName,
		"New truck added: "+truck.TruckName,
		&actorID, &truck.TruckID, nil,
	)

	return helper.JsonCreated(c, "truck created", dto.FromModelTruck(&truck))
}

// PUT /api/trucks/:id
func (ctl *TruckController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid truck id")
	}

	var req dto.TruckUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var truck model.TruckModel
	if err := ctl.DB.First(&truck, "truck_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "truck not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch truck")
	}

	updates := map[string]any{}
	if req.TruckCode != nil {
		updates["truck_code"] = *req.TruckCode
		truck.TruckCode = *req.TruckCode
	}
	if req.TruckName != nil {
		updates["truck_name"] = *req.TruckName
		truck.TruckName = *req.TruckName
	}
	if req.TruckCapacity != nil {
		updates["truck_capacity"] = *req.TruckCapacity
		truck.TruckCapacity = *req.TruckCapacity
	}
	if req.TruckStatus != nil {
		updates["truck_status"] = *req.TruckStatus
		truck.TruckStatus = *req.TruckStatus
	}
	if req.TruckAssignedDriverID != nil {
		updates["truck_assigned_driver_id"] = *req.TruckAssignedDriverID
		truck.TruckAssignedDriverID = req.TruckAssignedDriverID
	}

	if len(updates) > 0 {
		if err := ctl.DB.Model(&model.TruckModel{}).
			Where("truck_id = ?", id).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update truck")
		}
	}

	actorID, _ := helper.GetUserIDFromToken(c)
	_ = ctl.ActivityLog.LogTruck(
		"تم تحديث بيانات الشاحنة: "+truck.TruckName,
		"Truck updated: "+truck.TruckName,
		&actorID, &truck.TruckID, nil,
	)

	return helper.JsonUpdated(c, "truck updated", dto.FromModelTruck(&truck))
}

// DELETE /api/trucks/:id
func (ctl *TruckController) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid truck id")
	}

	var truck model.TruckModel
	if err := ctl.DB.First(&truck, "truck_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "truck not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch truck")
	}

	if err := ctl.DB.Delete(&model.TruckModel{}, "truck_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete truck")
	}

	actorID, _ := helper.GetUserIDFromToken(c)
	_ = ctl.ActivityLog.LogTruck(
		"تم حذف الشاحنة: "+truck.TruckName,
		"Truck deleted: "+truck.TruckName,
		&actorID, &truck.TruckID, nil,
	)

	return helper.JsonDeleted(c, "truck deleted", fiber.Map{"truck_id": id})
}

// PATCH /api/trucks/:id/location
// Drivers ping their GPS position; last-update timestamp moves with it.
func (ctl *TruckController) UpdateLocation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid truck id")
	}

	var req dto.TruckLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var truck model.TruckModel
	if err := ctl.DB.First(&truck, "truck_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "truck not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch truck")
	}

	now := time.Now()
	if err := ctl.DB.Model(&model.TruckModel{}).
		Where("truck_id = ?", id).
		Updates(map[string]any{
			"truck_current_latitude":     req.Latitude,
			"truck_current_longitude":    req.Longitude,
			"truck_last_location_update": now,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update truck location")
	}
	truck.TruckCurrentLatitude = &req.Latitude
	truck.TruckCurrentLongitude = &req.Longitude
	truck.TruckLastLocationUpdate = &now

	return helper.JsonUpdated(c, "truck location updated", dto.FromModelTruck(&truck))
}
