package dto

import (
	"time"

	"github.com/google/uuid"

	"sabeel_backend/internals/features/trucks/model"
)

/* ===============================
   REQUEST DTO
================================*/

type TruckRequest struct {
	TruckCode             string     `json:"truck_code" validate:"required,max=50"`
	TruckName             string     `json:"truck_name" validate:"required,max=150"`
	TruckCapacity         int        `json:"truck_capacity" validate:"required,min=1"`
	TruckAssignedDriverID *uuid.UUID `json:"truck_assigned_driver_id,omitempty"`
}

type TruckUpdateRequest struct {
	TruckCode             *string            `json:"truck_code,omitempty" validate:"omitempty,max=50"`
	TruckName             *string            `json:"truck_name,omitempty" validate:"omitempty,max=150"`
	TruckCapacity         *int               `json:"truck_capacity,omitempty" validate:"omitempty,min=1"`
	TruckStatus           *model.TruckStatus `json:"truck_status,omitempty" validate:"omitempty,oneof=active inactive maintenance"`
	TruckAssignedDriverID *uuid.UUID         `json:"truck_assigned_driver_id,omitempty"`
}

type TruckLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

/* ===============================
   RESPONSE DTO
================================*/

type TruckResponse struct {
	TruckID                 string            `json:"truck_id"`
	TruckCode               string            `json:"truck_code"`
	TruckName               string            `json:"truck_name"`
	TruckCapacity           int               `json:"truck_capacity"`
	TruckStatus             model.TruckStatus `json:"truck_status"`
	TruckCurrentLatitude    *float64          `json:"truck_current_latitude,omitempty"`
	TruckCurrentLongitude   *float64          `json:"truck_current_longitude,omitempty"`
	TruckLastLocationUpdate *time.Time        `json:"truck_last_location_update,omitempty"`
	TruckAssignedDriverID   *uuid.UUID        `json:"truck_assigned_driver_id,omitempty"`
	TruckCreatedAt          time.Time         `json:"truck_created_at"`
	TruckUpdatedAt          time.Time         `json:"truck_updated_at"`
}

func FromModelTruck(m *model.TruckModel) TruckResponse {
	return TruckResponse{
		TruckID:                 m.TruckID.String(),
		TruckCode:               m.TruckCode,
		TruckName:               m.TruckName,
		TruckCapacity:           m.TruckCapacity,
		TruckStatus:             m.TruckStatus,
		TruckCurrentLatitude:    m.TruckCurrentLatitude,
		TruckCurrentLongitude:   m.TruckCurrentLongitude,
		TruckLastLocationUpdate: m.TruckLastLocationUpdate,
		TruckAssignedDriverID:   m.TruckAssignedDriverID,
		TruckCreatedAt:          m.TruckCreatedAt,
		TruckUpdatedAt:          m.TruckUpdatedAt,
	}
}
