package dto

import (
	"time"

	"github.com/google/uuid"

	mosqueModel "sabeel_backend/internals/features/mosques/model"
	"sabeel_backend/internals/features/requests/model"
)

/* ===============================
   REQUEST DTO
================================*/

type NeedRequestSupplyItemRequest struct {
	ProductType       mosqueModel.ProductType `json:"product_type" validate:"required,oneof=dry_food hot_food miswak prayer_mat prayer_sheets prayer_towels quran quran_holder tissues"`
	RequestedQuantity int                     `json:"requested_quantity" validate:"required,min=1"`
}

type NeedRequestCreateRequest struct {
	MosqueID      uuid.UUID                      `json:"mosque_id" validate:"required"`
	WaterQuantity *int                           `json:"water_quantity,omitempty" validate:"omitempty,min=1"`
	Supplies      []NeedRequestSupplyItemRequest `json:"supplies,omitempty" validate:"omitempty,dive"`
}

type NeedRequestRejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

/* ===============================
   RESPONSE DTO
================================*/

type NeedRequestSupplyResponse struct {
	NeedRequestSupplyID string                  `json:"need_request_supply_id"`
	ProductType         mosqueModel.ProductType `json:"product_type"`
	RequestedQuantity   int                     `json:"requested_quantity"`
}

type NeedRequestResponse struct {
	NeedRequestID   string                      `json:"need_request_id"`
	MosqueID        string                      `json:"mosque_id"`
	RequestedBy     string                      `json:"requested_by"`
	WaterQuantity   *int                        `json:"water_quantity,omitempty"`
	Status          model.NeedRequestStatus     `json:"status"`
	ApprovedBy      *uuid.UUID                  `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time                  `json:"approved_at,omitempty"`
	RejectionReason *string                     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
	Supplies        []NeedRequestSupplyResponse `json:"supplies,omitempty"`
}

func FromModelNeedRequest(m *model.NeedRequestModel) NeedRequestResponse {
	resp := NeedRequestResponse{
		NeedRequestID:   m.NeedRequestID.String(),
		MosqueID:        m.NeedRequestMosqueID.String(),
		RequestedBy:     m.NeedRequestRequestedBy.String(),
		WaterQuantity:   m.NeedRequestWaterQuantity,
		Status:          m.NeedRequestStatus,
		ApprovedBy:      m.NeedRequestApprovedBy,
		ApprovedAt:      m.NeedRequestApprovedAt,
		RejectionReason: m.NeedRequestRejectionReason,
		CreatedAt:       m.NeedRequestCreatedAt,
		UpdatedAt:       m.NeedRequestUpdatedAt,
	}
	for i := range m.Supplies {
		line := &m.Supplies[i]
		resp.Supplies = append(resp.Supplies, NeedRequestSupplyResponse{
			NeedRequestSupplyID: line.NeedRequestSupplyID.String(),
			ProductType:         line.NeedRequestSupplyProductType,
			RequestedQuantity:   line.NeedRequestSupplyRequestedQuantity,
		})
	}
	return resp
}
