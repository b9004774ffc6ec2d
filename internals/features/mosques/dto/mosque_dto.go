package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"sabeel_backend/internals/features/mosques/model"
)

/* =========================================================
   REQUEST DTO (create / update)
   need_score / need_level are derived and never accepted
   from clients; only the scorers write them.
========================================================= */

type MosqueSupplyItemRequest struct {
	MosqueSupplyID   *uuid.UUID        `json:"mosque_supply_id,omitempty"`
	ProductType      model.ProductType `json:"product_type" validate:"omitempty,oneof=dry_food hot_food miswak prayer_mat prayer_sheets prayer_towels quran quran_holder tissues"`
	CurrentQuantity  *int              `json:"current_quantity,omitempty" validate:"omitempty,min=0"`
	RequiredQuantity *int              `json:"required_quantity,omitempty" validate:"omitempty,min=0"`
	IsActive         *bool             `json:"is_active,omitempty"`
}

type MosqueRequest struct {
	MosqueName               string                    `json:"mosque_name" validate:"required,max=150"`
	MosqueLocation           string                    `json:"mosque_location" validate:"required"`
	MosqueLatitude           *float64                  `json:"mosque_latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	MosqueLongitude          *float64                  `json:"mosque_longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	MosqueCapacity           int                       `json:"mosque_capacity" validate:"required,min=1"`
	MosqueCurrentWaterLevel  *int                      `json:"mosque_current_water_level,omitempty" validate:"omitempty,min=0"`
	MosqueRequiredWaterLevel int                       `json:"mosque_required_water_level" validate:"required,min=0"`
	MosqueDescription        *string                   `json:"mosque_description,omitempty"`
	MosqueAdminUserID        *uuid.UUID                `json:"mosque_admin_user_id,omitempty"`
	Products                 []MosqueSupplyItemRequest `json:"products,omitempty"`
}

type MosqueUpdateRequest struct {
	MosqueName               *string                   `json:"mosque_name,omitempty" validate:"omitempty,max=150"`
	MosqueLocation           *string                   `json:"mosque_location,omitempty"`
	MosqueLatitude           *float64                  `json:"mosque_latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	MosqueLongitude          *float64                  `json:"mosque_longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	MosqueCapacity           *int                      `json:"mosque_capacity,omitempty" validate:"omitempty,min=1"`
	MosqueCurrentWaterLevel  *int                      `json:"mosque_current_water_level,omitempty" validate:"omitempty,min=0"`
	MosqueRequiredWaterLevel *int                      `json:"mosque_required_water_level,omitempty" validate:"omitempty,min=0"`
	MosqueDescription        *string                   `json:"mosque_description,omitempty"`
	MosqueAdminUserID        *uuid.UUID                `json:"mosque_admin_user_id,omitempty"`
	MosqueIsActive           *bool                     `json:"mosque_is_active,omitempty"`
	Products                 []MosqueSupplyItemRequest `json:"products,omitempty"`
}

// ValidateWaterLevels enforces the tank invariants shared by create
// and update: the stored level cannot exceed capacity, and the
// required level must fit in the remaining space. Returns field errors
// in the standard validation shape, nil when everything holds.
func ValidateWaterLevels(capacity, current, required int) map[string][]string {
	errs := map[string][]string{}
	if current > capacity {
		errs["mosque_current_water_level"] = append(errs["mosque_current_water_level"],
			"current water level cannot be greater than capacity")
	}
	if available := capacity - current; required > available {
		errs["mosque_required_water_level"] = append(errs["mosque_required_water_level"],
			fmt.Sprintf("required water level must be less than or equal to available space (%d)", available))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type MosqueSupplyResponse struct {
	MosqueSupplyID   string            `json:"mosque_supply_id"`
	ProductType      model.ProductType `json:"product_type"`
	CurrentQuantity  int               `json:"current_quantity"`
	RequiredQuantity int               `json:"required_quantity"`
	NeedScore        int               `json:"need_score"`
	NeedLevel        model.NeedLevel   `json:"need_level"`
	IsActive         bool              `json:"is_active"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type MosqueResponse struct {
	MosqueID                 string                 `json:"mosque_id"`
	MosqueName               string                 `json:"mosque_name"`
	MosqueLocation           string                 `json:"mosque_location"`
	MosqueLatitude           *float64               `json:"mosque_latitude,omitempty"`
	MosqueLongitude          *float64               `json:"mosque_longitude,omitempty"`
	MosqueCapacity           int                    `json:"mosque_capacity"`
	MosqueCurrentWaterLevel  int                    `json:"mosque_current_water_level"`
	MosqueRequiredWaterLevel int                    `json:"mosque_required_water_level"`
	MosqueNeedScore          int                    `json:"mosque_need_score"`
	MosqueNeedLevel          model.NeedLevel        `json:"mosque_need_level"`
	MosqueDescription        *string                `json:"mosque_description,omitempty"`
	MosqueAdminUserID        *uuid.UUID             `json:"mosque_admin_user_id,omitempty"`
	MosqueIsActive           bool                   `json:"mosque_is_active"`
	MosqueCreatedAt          time.Time              `json:"mosque_created_at"`
	MosqueUpdatedAt          time.Time              `json:"mosque_updated_at"`
	Supplies                 []MosqueSupplyResponse `json:"supplies,omitempty"`
}

/* =========================================================
   MODEL <-> DTO
========================================================= */

func FromModelMosqueSupply(m *model.MosqueSupplyModel) MosqueSupplyResponse {
	return MosqueSupplyResponse{
		MosqueSupplyID:   m.MosqueSupplyID.String(),
		ProductType:      m.MosqueSupplyProductType,
		CurrentQuantity:  m.MosqueSupplyCurrentQuantity,
		RequiredQuantity: m.MosqueSupplyRequiredQuantity,
		NeedScore:        m.MosqueSupplyNeedScore,
		NeedLevel:        m.MosqueSupplyNeedLevel,
		IsActive:         m.MosqueSupplyIsActive,
		UpdatedAt:        m.MosqueSupplyUpdatedAt,
	}
}

func FromModelMosque(m *model.MosqueModel) MosqueResponse {
	resp := MosqueResponse{
		MosqueID:                 m.MosqueID.String(),
		MosqueName:               m.MosqueName,
		MosqueLocation:           m.MosqueLocation,
		MosqueLatitude:           m.MosqueLatitude,
		MosqueLongitude:          m.MosqueLongitude,
		MosqueCapacity:           m.MosqueCapacity,
		MosqueCurrentWaterLevel:  m.MosqueCurrentWaterLevel,
		MosqueRequiredWaterLevel: m.MosqueRequiredWaterLevel,
		MosqueNeedScore:          m.MosqueNeedScore,
		MosqueNeedLevel:          m.MosqueNeedLevel,
		MosqueDescription:        m.MosqueDescription,
		MosqueAdminUserID:        m.MosqueAdminUserID,
		MosqueIsActive:           m.MosqueIsActive,
		MosqueCreatedAt:          m.MosqueCreatedAt,
		MosqueUpdatedAt:          m.MosqueUpdatedAt,
	}
	for i := range m.Supplies {
		resp.Supplies = append(resp.Supplies, FromModelMosqueSupply(&m.Supplies[i]))
	}
	return resp
}
