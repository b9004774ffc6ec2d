package dto

import (
	"time"

	"github.com/google/uuid"

	"sabeel_backend/internals/features/deliveries/model"
)

/* ===============================
   REQUEST DTO
================================*/

type DeliveryCreateRequest struct {
	TruckID              uuid.UUID  `json:"truck_id" validate:"required"`
	MosqueID             uuid.UUID  `json:"mosque_id" validate:"required"`
	NeedRequestID        *uuid.UUID `json:"need_request_id,omitempty"`
	LitersDelivered      int        `json:"liters_delivered" validate:"required,min=1"`
	ExpectedDeliveryDate time.Time  `json:"expected_delivery_date" validate:"required"`
}

type DeliveryStatusRequest struct {
	Status model.DeliveryStatus `json:"status" validate:"required,oneof=pending in-transit delivered cancelled"`
}

type DeliveryProofRequest struct {
	ProofImagePath *string  `json:"proof_image_path,omitempty" validate:"omitempty,max=500"`
	ProofImageURL  *string  `json:"proof_image_url,omitempty" validate:"omitempty,max=500"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Notes          *string  `json:"notes,omitempty"`
}

/* ===============================
   RESPONSE DTO
================================*/

type DeliveryResponse struct {
	DeliveryID           string               `json:"delivery_id"`
	TruckID              string               `json:"truck_id"`
	MosqueID             string               `json:"mosque_id"`
	NeedRequestID        *uuid.UUID           `json:"need_request_id,omitempty"`
	LitersDelivered      int                  `json:"liters_delivered"`
	Status               model.DeliveryStatus `json:"status"`
	ExpectedDeliveryDate time.Time            `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time           `json:"actual_delivery_date,omitempty"`
	DeliveredBy          *uuid.UUID           `json:"delivered_by,omitempty"`
	Latitude             *float64             `json:"latitude,omitempty"`
	Longitude            *float64             `json:"longitude,omitempty"`
	ProofImagePath       *string              `json:"proof_image_path,omitempty"`
	ProofImageURL        *string              `json:"proof_image_url,omitempty"`
	Notes                *string              `json:"notes,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

func FromModelDelivery(m *model.DeliveryModel) DeliveryResponse {
	return DeliveryResponse{
		DeliveryID:           m.DeliveryID.String(),
		TruckID:              m.DeliveryTruckID.String(),
		MosqueID:             m.DeliveryMosqueID.String(),
		NeedRequestID:        m.DeliveryNeedRequestID,
		LitersDelivered:      m.DeliveryLitersDelivered,
		Status:               m.DeliveryStatus,
		ExpectedDeliveryDate: m.DeliveryExpectedDeliveryDate,
		ActualDeliveryDate:   m.DeliveryActualDeliveryDate,
		DeliveredBy:          m.DeliveryDeliveredBy,
		Latitude:             m.DeliveryLatitude,
		Longitude:            m.DeliveryLongitude,
		ProofImagePath:       m.DeliveryProofImagePath,
		ProofImageURL:        m.DeliveryProofImageURL,
		Notes:                m.DeliveryNotes,
		CreatedAt:            m.DeliveryCreatedAt,
		UpdatedAt:            m.DeliveryUpdatedAt,
	}
}
