package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sabeel_backend/internals/features/deliveries/dto"
	"sabeel_backend/internals/features/deliveries/model"
	"sabeel_backend/internals/features/deliveries/service"
	helper "sabeel_backend/internals/helpers"
)

type DeliveryController struct {
	DB      *gorm.DB
	Service *service.DeliveryService
}

func NewDeliveryController(db *gorm.DB, svc *service.DeliveryService) *DeliveryController {
	return &DeliveryController{DB: db, Service: svc}
}

// GET /api/deliveries?truck_id=&mosque_id=&status=
func (ctl *DeliveryController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.Model(&model.DeliveryModel{})
	if truckID := c.Query("truck_id"); truckID != "" {
		id, err := uuid.Parse(truckID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid truck_id filter")
		}
		q = q.Where("delivery_truck_id = ?", id)
	}
	if mosqueID := c.Query("mosque_id"); mosqueID != "" {
		id, err := uuid.Parse(mosqueID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid mosque_id filter")
		}
		q = q.Where("delivery_mosque_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		if !model.IsValidDeliveryStatus(model.DeliveryStatus(status)) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown delivery status: "+status)
		}
		q = q.Where("delivery_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count deliveries")
	}

	var deliveries []model.DeliveryModel
	if err := q.Order("delivery_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&deliveries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list deliveries")
	}

	items := make([]dto.DeliveryResponse, 0, len(deliveries))
	for i := range deliveries {
		items = append(items, dto.FromModelDelivery(&deliveries[i]))
	}
	return helper.JsonList(c, "deliveries fetched", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/deliveries/:id
func (ctl *DeliveryController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid delivery id")
	}

	var delivery model.DeliveryModel
	if err := ctl.DB.First(&delivery, "delivery_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "delivery not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch delivery")
	}
	return helper.JsonOK(c, "delivery fetched", dto.FromModelDelivery(&delivery))
}

// POST /api/deliveries
func (ctl *DeliveryController) Store(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.DeliveryCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	delivery, err := ctl.Service.Create(body.TruckID, body.MosqueID, body.NeedRequestID, body.LitersDelivered, body.ExpectedDeliveryDate, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLiters):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create delivery")
		}
	}
	return helper.JsonCreated(c, "delivery created", dto.FromModelDelivery(delivery))
}

// PATCH /api/deliveries/:id/status
// The delivered branch runs the full water-level + rescore workflow.
func (ctl *DeliveryController) UpdateStatus(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid delivery id")
	}

	var body dto.DeliveryStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	delivery, err := ctl.Service.SetStatus(id, body.Status, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTransition):
			return helper.JsonError(c, fiber.StatusBadRequest, "delivery cannot move to "+string(body.Status)+" from its current status")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "delivery not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update delivery status")
		}
	}
	return helper.JsonUpdated(c, "delivery status updated", dto.FromModelDelivery(delivery))
}

// PATCH /api/deliveries/:id/proof
func (ctl *DeliveryController) UpdateProof(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid delivery id")
	}

	var body dto.DeliveryProofRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	delivery, err := ctl.Service.UpdateProof(id, body.ProofImagePath, body.ProofImageURL, body.Latitude, body.Longitude, body.Notes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "delivery not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update delivery proof")
	}
	return helper.JsonUpdated(c, "delivery proof updated", dto.FromModelDelivery(delivery))
}
