package model

import (
	"time"

	"github.com/google/uuid"

	mosqueModel "sabeel_backend/internals/features/mosques/model"
)

// NeedRequestStatus is a closed enum. Allowed transitions:
//
//	pending → approved | rejected
//	approved → fulfilled (set when a referencing delivery completes)
//
// rejected and fulfilled are terminal.
type NeedRequestStatus string

const (
	NeedRequestStatusPending   NeedRequestStatus = "pending"
	NeedRequestStatusApproved  NeedRequestStatus = "approved"
	NeedRequestStatusRejected  NeedRequestStatus = "rejected"
	NeedRequestStatusFulfilled NeedRequestStatus = "fulfilled"
)

var needRequestTransitions = map[NeedRequestStatus][]NeedRequestStatus{
	NeedRequestStatusPending:   {NeedRequestStatusApproved, NeedRequestStatusRejected},
	NeedRequestStatusApproved:  {NeedRequestStatusFulfilled},
	NeedRequestStatusRejected:  {},
	NeedRequestStatusFulfilled: {},
}

func (s NeedRequestStatus) CanTransitionTo(next NeedRequestStatus) bool {
	for _, allowed := range needRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type NeedRequestModel struct {
	NeedRequestID              uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"need_request_id"`
	NeedRequestMosqueID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_need_requests_mosque" json:"need_request_mosque_id"`
	NeedRequestRequestedBy     uuid.UUID         `gorm:"type:uuid;not null" json:"need_request_requested_by"`
	NeedRequestWaterQuantity   *int              `json:"need_request_water_quantity,omitempty"` // liters, nil when supplies-only
	NeedRequestStatus          NeedRequestStatus `gorm:"type:varchar(10);not null;default:'pending';index:idx_need_requests_status" json:"need_request_status"`
	NeedRequestApprovedBy      *uuid.UUID        `gorm:"type:uuid" json:"need_request_approved_by,omitempty"`
	NeedRequestApprovedAt      *time.Time        `json:"need_request_approved_at,omitempty"`
	NeedRequestRejectionReason *string           `gorm:"type:text" json:"need_request_rejection_reason,omitempty"`
	NeedRequestCreatedAt       time.Time         `gorm:"autoCreateTime;index:idx_need_requests_created_at" json:"need_request_created_at"`
	NeedRequestUpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"need_request_updated_at"`

	Supplies []NeedRequestSupplyModel `gorm:"foreignKey:NeedRequestSupplyNeedRequestID;references:NeedRequestID" json:"supplies,omitempty"`
}

func (NeedRequestModel) TableName() string {
	return "need_requests"
}

// NeedRequestSupplyModel is a pure line item; it has no lifecycle of
// its own.
type NeedRequestSupplyModel struct {
	NeedRequestSupplyID                uuid.UUID               `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"need_request_supply_id"`
	NeedRequestSupplyNeedRequestID     uuid.UUID               `gorm:"type:uuid;not null;index:idx_need_request_supplies_request" json:"need_request_supply_need_request_id"`
	NeedRequestSupplyProductType       mosqueModel.ProductType `gorm:"type:varchar(20);not null;index:idx_need_request_supplies_product" json:"need_request_supply_product_type"`
	NeedRequestSupplyRequestedQuantity int                     `gorm:"not null" json:"need_request_supply_requested_quantity"`
	NeedRequestSupplyCreatedAt         time.Time               `gorm:"autoCreateTime" json:"need_request_supply_created_at"`
}

func (NeedRequestSupplyModel) TableName() string {
	return "need_request_supplies"
}
