package model

import (
	"time"

	"github.com/google/uuid"
)

type TruckStatus string

const (
	TruckStatusActive      TruckStatus = "active"
	TruckStatusInactive    TruckStatus = "inactive"
	TruckStatusMaintenance TruckStatus = "maintenance"
)

func IsValidTruckStatus(s TruckStatus) bool {
	return s == TruckStatusActive || s == TruckStatusInactive || s == TruckStatusMaintenance
}

type TruckModel struct {
	TruckID                 uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"truck_id"`
	TruckCode               string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"truck_code"` // fleet plate/identifier
	TruckName               string      `gorm:"type:varchar(150);not null" json:"truck_name"`
	TruckCapacity           int         `gorm:"not null" json:"truck_capacity"` // liters
	TruckStatus             TruckStatus `gorm:"type:varchar(15);not null;default:'active';index:idx_trucks_status" json:"truck_status"`
	TruckCurrentLatitude    *float64    `gorm:"type:decimal(10,8)" json:"truck_current_latitude,omitempty"`
	TruckCurrentLongitude   *float64    `gorm:"type:decimal(11,8)" json:"truck_current_longitude,omitempty"`
	TruckLastLocationUpdate *time.Time  `json:"truck_last_location_update,omitempty"`
	TruckAssignedDriverID   *uuid.UUID  `gorm:"type:uuid" json:"truck_assigned_driver_id,omitempty"`
	TruckCreatedAt          time.Time   `gorm:"autoCreateTime" json:"truck_created_at"`
	TruckUpdatedAt          time.Time   `gorm:"autoUpdateTime" json:"truck_updated_at"`
}

func (TruckModel) TableName() string {
	return "trucks"
}
