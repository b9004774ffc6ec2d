package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "sabeel_backend/internals/features/activitylog/service"
	"sabeel_backend/internals/features/mosques/dto"
	"sabeel_backend/internals/features/mosques/model"
	"sabeel_backend/internals/features/mosques/service"
	helper "sabeel_backend/internals/helpers"
)

type MosqueController struct {
	DB           *gorm.DB
	NeedScores   *service.NeedScoreService
	SupplyScores *service.SupplyNeedScoreService
	ActivityLog  *activityService.ActivityLogService
}

func NewMosqueController(db *gorm.DB, al *activityService.ActivityLogService) *MosqueController {
	return &MosqueController{
		DB:           db,
		NeedScores:   service.NewNeedScoreService(db),
		SupplyScores: service.NewSupplyNeedScoreService(db),
		ActivityLog:  al,
	}
}

/* =========================================================
   GET /api/mosques
   Filters: search, need_level, min_need_score, is_active
   Sort: need_score (default) | name | overall
   "overall" ranks by the worse of the water score and the
   worst supply-line score.
========================================================= */

func (ctl *MosqueController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.Model(&model.MosqueModel{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("mosque_name ILIKE ? OR mosque_location ILIKE ?", like, like)
	}
	if level := c.Query("need_level"); level != "" {
		q = q.Where("mosque_need_level = ?", level)
	}
	if min := c.QueryInt("min_need_score", -1); min >= 0 {
		q = q.Where("mosque_need_score >= ?", min)
	}
	if active := c.Query("is_active"); active != "" {
		q = q.Where("mosque_is_active = ?", active == "true" || active == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count mosques")
	}

	switch c.Query("sort", "need_score") {
	case "name":
		q = q.Order("mosque_name ASC")
	case "overall":
		q = q.Order(`GREATEST(mosque_need_score, COALESCE((
			SELECT MAX(ms.mosque_supply_need_score)
			FROM mosque_supplies ms
			WHERE ms.mosque_supply_mosque_id = mosques.mosque_id
		), 0)) DESC`)
	default:
		q = q.Order("mosque_need_score DESC")
	}

	var mosques []model.MosqueModel
	if err := q.Preload("Supplies").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&mosques).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list mosques")
	}

	items := make([]dto.MosqueResponse, 0, len(mosques))
	for i := range mosques {
		items = append(items, dto.FromModelMosque(&mosques[i]))
	}

	return helper.JsonList(c, "mosques fetched", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/mosques/:id
func (ctl *MosqueController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid mosque id")
	}

	var mosque model.MosqueModel
	if err := ctl.DB.Preload("Supplies").First(&mosque, "mosque_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "mosque not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch mosque")
	}

	return helper.JsonOK(c, "mosque fetched", dto.FromModelMosque(&mosque))
}

/* =========================================================
   POST /api/mosques
   Every mosque gets a full set of supply lines, one per
   product type, so the supply scorer always has nine rows
   to work with. Both scorers run right after creation.
========================================================= */

func (ctl *MosqueController) Create(c *fiber.Ctx) error {
	var req dto.MosqueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	mosque := model.MosqueModel{
		MosqueName:               req.MosqueName,
		MosqueLocation:           req.MosqueLocation,
		MosqueLatitude:           req.MosqueLatitude,
		MosqueLongitude:          req.MosqueLongitude,
		MosqueCapacity:           req.MosqueCapacity,
		MosqueRequiredWaterLevel: req.MosqueRequiredWaterLevel,
		MosqueDescription:        req.MosqueDescription,
		MosqueAdminUserID:        req.MosqueAdminUserID,
		MosqueIsActive:           true,
	}
	if req.MosqueCurrentWaterLevel != nil {
		mosque.MosqueCurrentWaterLevel = *req.MosqueCurrentWaterLevel
	}

	if errs := dto.ValidateWaterLevels(mosque.MosqueCapacity, mosque.MosqueCurrentWaterLevel, mosque.MosqueRequiredWaterLevel); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	requested := map[model.ProductType]dto.MosqueSupplyItemRequest{}
	for _, item := range req.Products {
		if !model.IsValidProductType(item.ProductType) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "unknown product type: "+string(item.ProductType))
		}
		requested[item.ProductType] = item
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&mosque).Error; err != nil {
			return err
		}
		for _, pt := range model.AllProductTypes {
			line := model.MosqueSupplyModel{
				MosqueSupplyMosqueID:    mosque.MosqueID,
				MosqueSupplyProductType: pt,
				MosqueSupplyIsActive:    true,
			}
			if item, ok := requested[pt]; ok {
				if item.CurrentQuantity != nil {
					line.MosqueSupplyCurrentQuantity = *item.CurrentQuantity
				}
				if item.RequiredQuantity != nil {
					line.MosqueSupplyRequiredQuantity = *item.RequiredQuantity
				}
				if item.IsActive != nil {
					line.MosqueSupplyIsActive = *item.IsActive
				}
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		if err := ctl.NeedScores.UpdateNeedLevel(tx, &mosque); err != nil {
			return err
		}
		return ctl.SupplyScores.UpdateSuppliesNeedScores(tx, mosque.MosqueID)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create mosque")
	}

	actorID, _ := helper.GetUserIDFromToken(c)
	_ = ctl.ActivityLog.LogMosque(
		"تم إضافة مسجد جديد: "+mosque.MosqueName,
		"New mosque added: "+mosque.MosqueName,
		&actorID, &mosque.MosqueID, nil,
	)

	if err := ctl.DB.Preload("Supplies").First(&mosque, "mosque_id = ?", mosque.MosqueID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload mosque")
	}
	return helper.JsonCreated(c, "mosque created", dto.FromModelMosque(&mosque))
}

/* =========================================================
   PUT /api/mosques/:id
   Partial update. Scores are recomputed whenever an input
   of either scorer may have changed; clients can never set
   them directly.
========================================================= */

func (ctl *MosqueController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid mosque id")
	}

	var req dto.MosqueUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var mosque model.MosqueModel
	if err := ctl.DB.First(&mosque, "mosque_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "mosque not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch mosque")
	}

	updates := map[string]any{}
	waterChanged := false
	if req.MosqueName != nil {
		updates["mosque_name"] = *req.MosqueName
		mosque.MosqueName = *req.MosqueName
	}
	if req.MosqueLocation != nil {
		updates["mosque_location"] = *req.MosqueLocation
		mosque.MosqueLocation = *req.MosqueLocation
	}
	if req.MosqueLatitude != nil {
		updates["mosque_latitude"] = *req.MosqueLatitude
		mosque.MosqueLatitude = req.MosqueLatitude
	}
	if req.MosqueLongitude != nil {
		updates["mosque_longitude"] = *req.MosqueLongitude
		mosque.MosqueLongitude = req.MosqueLongitude
	}
	if req.MosqueCapacity != nil {
		updates["mosque_capacity"] = *req.MosqueCapacity
		mosque.MosqueCapacity = *req.MosqueCapacity
	}
	if req.MosqueCurrentWaterLevel != nil {
		updates["mosque_current_water_level"] = *req.MosqueCurrentWaterLevel
		mosque.MosqueCurrentWaterLevel = *req.MosqueCurrentWaterLevel
		waterChanged = true
	}
	if req.MosqueRequiredWaterLevel != nil {
		updates["mosque_required_water_level"] = *req.MosqueRequiredWaterLevel
		mosque.MosqueRequiredWaterLevel = *req.MosqueRequiredWaterLevel
		waterChanged = true
	}
	if req.MosqueDescription != nil {
		updates["mosque_description"] = *req.MosqueDescription
		mosque.MosqueDescription = req.MosqueDescription
	}
	if req.MosqueAdminUserID != nil {
		updates["mosque_admin_user_id"] = *req.MosqueAdminUserID
		mosque.MosqueAdminUserID = req.MosqueAdminUserID
	}
	if req.MosqueIsActive != nil {
		updates["mosque_is_active"] = *req.MosqueIsActive
		mosque.MosqueIsActive = *req.MosqueIsActive
		waterChanged = true
	}

	// The tank invariants are checked against the merged values, so a
	// capacity cut below the stored level fails the same way an
	// over-capacity level does.
	if errs := dto.ValidateWaterLevels(mosque.MosqueCapacity, mosque.MosqueCurrentWaterLevel, mosque.MosqueRequiredWaterLevel); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	for _, item := range req.Products {
		if item.ProductType != "" && !model.IsValidProductType(item.ProductType) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "unknown product type: "+string(item.ProductType))
		}
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.MosqueModel{}).
				Where("mosque_id = ?", id).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		for _, item := range req.Products {
			lineUpdates := map[string]any{}
			if item.CurrentQuantity != nil {
				lineUpdates["mosque_supply_current_quantity"] = *item.CurrentQuantity
			}
			if item.RequiredQuantity != nil {
				lineUpdates["mosque_supply_required_quantity"] = *item.RequiredQuantity
			}
			if item.IsActive != nil {
				lineUpdates["mosque_supply_is_active"] = *item.IsActive
			}
			if len(lineUpdates) == 0 {
				continue
			}
			// updated_at refreshes here via Updates, which is what the
			// staleness component of the supply scorer keys off.
			lineUpdates["mosque_supply_updated_at"] = time.Now()

			scoped := tx.Model(&model.MosqueSupplyModel{}).
				Where("mosque_supply_mosque_id = ?", id)
			if item.MosqueSupplyID != nil {
				scoped = scoped.Where("mosque_supply_id = ?", *item.MosqueSupplyID)
			} else if item.ProductType != "" {
				scoped = scoped.Where("mosque_supply_product_type = ?", item.ProductType)
			} else {
				continue
			}
			if err := scoped.Updates(lineUpdates).Error; err != nil {
				return err
			}
		}

		if waterChanged {
			if err := ctl.NeedScores.UpdateNeedLevel(tx, &mosque); err != nil {
				return err
			}
		}
		if len(req.Products) > 0 {
			if err := ctl.SupplyScores.UpdateSuppliesNeedScores(tx, id); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update mosque")
	}

	actorID, _ := helper.GetUserIDFromToken(c)
	_ = ctl.ActivityLog.LogMosque(
		"تم تحديث بيانات المسجد: "+mosque.MosqueName,
		"Mosque updated: "+mosque.MosqueName,
		&actorID, &mosque.MosqueID, nil,
	)

	if err := ctl.DB.Preload("Supplies").First(&mosque, "mosque_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload mosque")
	}
	return helper.JsonUpdated(c, "mosque updated", dto.FromModelMosque(&mosque))
}

// DELETE /api/mosques/:id
func (ctl *MosqueController) Destroy(c *fiber.Ctx) error {
	// Double-check the route guard: removal takes the supply lines with
	// it, so only admins may do it.
	if !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid mosque id")
	}

	var mosque model.MosqueModel
	if err := ctl.DB.First(&mosque, "mosque_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "mosque not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch mosque")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mosque_supply_mosque_id = ?", id).
			Delete(&model.MosqueSupplyModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MosqueModel{}, "mosque_id = ?", id).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete mosque")
	}

	actorID, _ := helper.GetUserIDFromToken(c)
	_ = ctl.ActivityLog.LogMosque(
		"تم حذف المسجد: "+mosque.MosqueName,
		"Mosque deleted: "+mosque.MosqueName,
		&actorID, &mosque.MosqueID, nil,
	)

	return helper.JsonDeleted(c, "mosque deleted", fiber.Map{"mosque_id": id})
}

// GET /api/mosques/active-count
func (ctl *MosqueController) ActiveCount(c *fiber.Ctx) error {
	var count int64
	if err := ctl.DB.Model(&model.MosqueModel{}).
		Where("mosque_is_active = ?", true).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count active mosques")
	}
	return helper.JsonOK(c, "active mosque count fetched", fiber.Map{"active_count": count})
}

// POST /api/mosques/:id/rescore
// Manual recompute of both scorers, for operators after bulk edits.
func (ctl *MosqueController) Rescore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid mosque id")
	}

	var mosque model.MosqueModel
	if err := ctl.DB.First(&mosque, "mosque_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "mosque not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch mosque")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctl.NeedScores.UpdateNeedLevel(tx, &mosque); err != nil {
			return err
		}
		return ctl.SupplyScores.UpdateSuppliesNeedScores(tx, id)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to rescore mosque")
	}

	if err := ctl.DB.Preload("Supplies").First(&mosque, "mosque_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reload mosque")
	}
	return helper.JsonOK(c, "mosque rescored", dto.FromModelMosque(&mosque))
}
