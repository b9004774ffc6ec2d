package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is a closed enum with a strict transition table:
//
//	pending    → in-transit | cancelled
//	in-transit → delivered  | cancelled
//
// delivered and cancelled are terminal. The table is the single source
// of truth for the workflow; nothing else may mutate delivery_status.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusInTransit DeliveryStatus = "in-transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

var AllDeliveryStatuses = []DeliveryStatus{
	DeliveryStatusPending,
	DeliveryStatusInTransit,
	DeliveryStatusDelivered,
	DeliveryStatusCancelled,
}

func IsValidDeliveryStatus(s DeliveryStatus) bool {
	for _, v := range AllDeliveryStatuses {
		if v == s {
			return true
		}
	}
	return false
}

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPending:   {DeliveryStatusInTransit, DeliveryStatusCancelled},
	DeliveryStatusInTransit: {DeliveryStatusDelivered, DeliveryStatusCancelled},
	DeliveryStatusDelivered: {},
	DeliveryStatusCancelled: {},
}

func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s DeliveryStatus) IsTerminal() bool {
	return len(deliveryTransitions[s]) == 0
}

type DeliveryModel struct {
	DeliveryID                   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"delivery_id"`
	DeliveryTruckID              uuid.UUID      `gorm:"type:uuid;not null;index:idx_deliveries_truck" json:"delivery_truck_id"`
	DeliveryMosqueID             uuid.UUID      `gorm:"type:uuid;not null;index:idx_deliveries_mosque" json:"delivery_mosque_id"`
	DeliveryNeedRequestID        *uuid.UUID     `gorm:"type:uuid" json:"delivery_need_request_id,omitempty"`
	DeliveryLitersDelivered      int            `gorm:"not null" json:"delivery_liters_delivered"`
	DeliveryStatus               DeliveryStatus `gorm:"type:varchar(12);not null;default:'pending';index:idx_deliveries_status" json:"delivery_status"`
	DeliveryExpectedDeliveryDate time.Time      `gorm:"type:date;not null" json:"delivery_expected_delivery_date"`
	DeliveryActualDeliveryDate   *time.Time     `gorm:"index:idx_deliveries_delivery_date" json:"delivery_actual_delivery_date,omitempty"`
	DeliveryDeliveredBy          *uuid.UUID     `gorm:"type:uuid" json:"delivery_delivered_by,omitempty"`
	DeliveryLatitude             *float64       `gorm:"type:decimal(10,8)" json:"delivery_latitude,omitempty"`
	DeliveryLongitude            *float64       `gorm:"type:decimal(11,8)" json:"delivery_longitude,omitempty"`
	DeliveryProofImagePath       *string        `gorm:"type:varchar(500)" json:"delivery_proof_image_path,omitempty"`
	DeliveryProofImageURL        *string        `gorm:"type:varchar(500)" json:"delivery_proof_image_url,omitempty"`
	DeliveryNotes                *string        `gorm:"type:text" json:"delivery_notes,omitempty"`
	DeliveryCreatedAt            time.Time      `gorm:"autoCreateTime" json:"delivery_created_at"`
	DeliveryUpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"delivery_updated_at"`
}

func (DeliveryModel) TableName() string {
	return "deliveries"
}
