package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	mosqueModel "sabeel_backend/internals/features/mosques/model"
	"sabeel_backend/internals/features/requests/dto"
	"sabeel_backend/internals/features/requests/model"
	"sabeel_backend/internals/features/requests/service"
	helper "sabeel_backend/internals/helpers"
)

type NeedRequestController struct {
	DB      *gorm.DB
	Service *service.NeedRequestService
}

func NewNeedRequestController(db *gorm.DB, svc *service.NeedRequestService) *NeedRequestController {
	return &NeedRequestController{DB: db, Service: svc}
}

// GET /api/need-requests?status=&mosque_id=
func (ctl *NeedRequestController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 15, 100)

	q := ctl.DB.Model(&model.NeedRequestModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("need_request_status = ?", status)
	}
	if mosqueID := c.Query("mosque_id"); mosqueID != "" {
		id, err := uuid.Parse(mosqueID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid mosque_id filter")
		}
		q = q.Where("need_request_mosque_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count need requests")
	}

	var requests []model.NeedRequestModel
	if err := q.Preload("Supplies").
		Order("need_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list need requests")
	}

	items := make([]dto.NeedRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.FromModelNeedRequest(&requests[i]))
	}
	return helper.JsonList(c, "need requests fetched", items, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/need-requests/:id
func (ctl *NeedRequestController) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid need request id")
	}

	var req model.NeedRequestModel
	if err := ctl.DB.Preload("Supplies").First(&req, "need_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "need request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch need request")
	}
	return helper.JsonOK(c, "need request fetched", dto.FromModelNeedRequest(&req))
}

// GET /api/need-requests/my-mosque
// Requests for the mosque administered by the authenticated user.
func (ctl *NeedRequestController) MyMosque(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var mosque mosqueModel.MosqueModel
	if err := ctl.DB.First(&mosque, "mosque_admin_user_id = ?", actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no mosque assigned to this account")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to resolve mosque")
	}

	var requests []model.NeedRequestModel
	if err := ctl.DB.Preload("Supplies").
		Where("need_request_mosque_id = ?", mosque.MosqueID).
		Order("need_request_created_at DESC").
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list need requests")
	}

	items := make([]dto.NeedRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.FromModelNeedRequest(&requests[i]))
	}
	return helper.JsonOK(c, "need requests fetched", items)
}

// GET /api/need-requests/mosque/:mosqueId
func (ctl *NeedRequestController) GetByMosque(c *fiber.Ctx) error {
	mosqueID, err := uuid.Parse(c.Params("mosqueId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid mosque id")
	}

	var requests []model.NeedRequestModel
	if err := ctl.DB.Preload("Supplies").
		Where("need_request_mosque_id = ?", mosqueID).
		Order("need_request_created_at DESC").
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list need requests")
	}

	items := make([]dto.NeedRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, dto.FromModelNeedRequest(&requests[i]))
	}
	return helper.JsonOK(c, "need requests fetched", items)
}

// POST /api/need-requests
func (ctl *NeedRequestController) Store(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.NeedRequestCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	// Operators may file for any mosque; everyone else only for the
	// mosque they administer.
	if !helper.IsOperator(c) {
		var owned int64
		if err := ctl.DB.Model(&mosqueModel.MosqueModel{}).
			Where("mosque_id = ? AND mosque_admin_user_id = ?", body.MosqueID, actorID).
			Count(&owned).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to verify mosque ownership")
		}
		if owned == 0 {
			return helper.JsonError(c, fiber.StatusForbidden, "not the administrator of this mosque")
		}
	}

	supplies := make([]service.SupplyItem, 0, len(body.Supplies))
	for _, item := range body.Supplies {
		supplies = append(supplies, service.SupplyItem{
			ProductType:       item.ProductType,
			RequestedQuantity: item.RequestedQuantity,
		})
	}

	req, err := ctl.Service.Create(body.MosqueID, actorID, body.WaterQuantity, supplies)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyRequest):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "mosque not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create need request")
		}
	}
	return helper.JsonCreated(c, "need request created", dto.FromModelNeedRequest(req))
}

// POST /api/need-requests/:id/approve
func (ctl *NeedRequestController) Approve(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid need request id")
	}

	req, err := ctl.Service.Approve(id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTransition):
			return helper.JsonError(c, fiber.StatusBadRequest, "request cannot be approved in its current status")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "need request not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to approve need request")
		}
	}
	return helper.JsonUpdated(c, "need request approved", dto.FromModelNeedRequest(req))
}

// POST /api/need-requests/:id/reject
func (ctl *NeedRequestController) Reject(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid need request id")
	}

	var body dto.NeedRequestRejectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	req, err := ctl.Service.Reject(id, actorID, body.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTransition):
			return helper.JsonError(c, fiber.StatusBadRequest, "request cannot be rejected in its current status")
		case errors.Is(err, service.ErrEmptyRejectionReason):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "need request not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to reject need request")
		}
	}
	return helper.JsonUpdated(c, "need request rejected", dto.FromModelNeedRequest(req))
}
