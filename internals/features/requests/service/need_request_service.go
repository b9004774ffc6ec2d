package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityService "sabeel_backend/internals/features/activitylog/service"
	mosqueModel "sabeel_backend/internals/features/mosques/model"
	notifyService "sabeel_backend/internals/features/notifications/service"
	"sabeel_backend/internals/features/requests/model"
)

var (
	// ErrInvalidTransition: the request is not in a state that permits
	// the attempted operation. Re-approving an approved request fails
	// with this, never silently succeeds.
	ErrInvalidTransition = errors.New("need request: invalid status transition")

	// ErrEmptyRequest: neither water quantity nor supply items present.
	ErrEmptyRequest = errors.New("need request must ask for water or at least one supply item")

	// ErrEmptyRejectionReason: reject requires a non-empty reason.
	ErrEmptyRejectionReason = errors.New("rejection reason is required")
)

// SupplyItem is one requested product line.
type SupplyItem struct {
	ProductType       mosqueModel.ProductType
	RequestedQuantity int
}

// NeedRequestService owns the request state machine:
// pending → approved | rejected, approved → fulfilled.
type NeedRequestService struct {
	DB            *gorm.DB
	ActivityLog   *activityService.ActivityLogService
	Notifications *notifyService.NotificationService
}

func NewNeedRequestService(db *gorm.DB, al *activityService.ActivityLogService, nf *notifyService.NotificationService) *NeedRequestService {
	return &NeedRequestService{DB: db, ActivityLog: al, Notifications: nf}
}

// Create validates and persists a new pending request with its line
// items. All validation happens before any write.
func (s *NeedRequestService) Create(mosqueID, requestedBy uuid.UUID, waterQuantity *int, supplies []SupplyItem) (*model.NeedRequestModel, error) {
	hasWater := waterQuantity != nil && *waterQuantity > 0
	if waterQuantity != nil && *waterQuantity <= 0 {
		return nil, fmt.Errorf("water quantity must be positive: %w", ErrEmptyRequest)
	}
	if !hasWater && len(supplies) == 0 {
		return nil, ErrEmptyRequest
	}
	for _, item := range supplies {
		if !mosqueModel.IsValidProductType(item.ProductType) {
			return nil, fmt.Errorf("unknown product type %q", item.ProductType)
		}
		if item.RequestedQuantity <= 0 {
			return nil, fmt.Errorf("requested quantity for %s must be positive", item.ProductType)
		}
	}

	var mosque mosqueModel.MosqueModel
	if err := s.DB.First(&mosque, "mosque_id = ?", mosqueID).Error; err != nil {
		return nil, err
	}

	req := model.NeedRequestModel{
		NeedRequestMosqueID:      mosqueID,
		NeedRequestRequestedBy:   requestedBy,
		NeedRequestWaterQuantity: waterQuantity,
		NeedRequestStatus:        model.NeedRequestStatusPending,
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&req).Error; err != nil {
			return err
		}
		for _, item := range supplies {
			line := model.NeedRequestSupplyModel{
				NeedRequestSupplyNeedRequestID:     req.NeedRequestID,
				NeedRequestSupplyProductType:       item.ProductType,
				NeedRequestSupplyRequestedQuantity: item.RequestedQuantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			req.Supplies = append(req.Supplies, line)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	waterPartAr, waterPartEn := "", ""
	if hasWater {
		waterPartAr = fmt.Sprintf(" بكمية %d لتر", *waterQuantity)
		waterPartEn = fmt.Sprintf(" with %d liters", *waterQuantity)
	}
	suppliesPartAr, suppliesPartEn := "", ""
	if len(supplies) > 0 {
		suppliesPartAr = fmt.Sprintf(" + منتجات بعدد أنواع: %d", len(supplies))
		suppliesPartEn = fmt.Sprintf(" + supplies types: %d", len(supplies))
	}
	_ = s.ActivityLog.LogNeedRequest(
		"تم إنشاء طلب حاجة جديد للمسجد: "+mosque.MosqueName+waterPartAr+suppliesPartAr,
		"New need request created for mosque: "+mosque.MosqueName+waterPartEn+suppliesPartEn,
		&requestedBy, &req.NeedRequestID, nil,
	)

	return &req, nil
}

// Approve: pending → approved. Sets approver and timestamp, clears any
// rejection reason, notifies the mosque admin.
func (s *NeedRequestService) Approve(requestID, approverID uuid.UUID) (*model.NeedRequestModel, error) {
	var req model.NeedRequestModel
	var mosque mosqueModel.MosqueModel

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "need_request_id = ?", requestID).Error; err != nil {
			return err
		}
		if !req.NeedRequestStatus.CanTransitionTo(model.NeedRequestStatusApproved) {
			return ErrInvalidTransition
		}
		if err := tx.First(&mosque, "mosque_id = ?", req.NeedRequestMosqueID).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&model.NeedRequestModel{}).
			Where("need_request_id = ?", requestID).
			Updates(map[string]any{
				"need_request_status":           model.NeedRequestStatusApproved,
				"need_request_approved_by":      approverID,
				"need_request_approved_at":      now,
				"need_request_rejection_reason": nil,
			}).Error; err != nil {
			return err
		}
		req.NeedRequestStatus = model.NeedRequestStatusApproved
		req.NeedRequestApprovedBy = &approverID
		req.NeedRequestApprovedAt = &now
		req.NeedRequestRejectionReason = nil
		return nil
	}); err != nil {
		return nil, err
	}

	_ = s.ActivityLog.LogNeedRequest(
		"تم الموافقة على طلب حاجة للمسجد: "+mosque.MosqueName,
		"Need request approved for mosque: "+mosque.MosqueName,
		&approverID, &req.NeedRequestID, nil,
	)
	s.Notifications.NeedRequestApproved(req.NeedRequestID, approverID, mosque.MosqueAdminUserID)

	return &req, nil
}

// Reject: pending → rejected. Requires a non-empty reason; clears
// approver fields.
func (s *NeedRequestService) Reject(requestID, approverID uuid.UUID, reason string) (*model.NeedRequestModel, error) {
	if reason == "" {
		return nil, ErrEmptyRejectionReason
	}

	var req model.NeedRequestModel
	var mosque mosqueModel.MosqueModel

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "need_request_id = ?", requestID).Error; err != nil {
			return err
		}
		if !req.NeedRequestStatus.CanTransitionTo(model.NeedRequestStatusRejected) {
			return ErrInvalidTransition
		}
		if err := tx.First(&mosque, "mosque_id = ?", req.NeedRequestMosqueID).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.NeedRequestModel{}).
			Where("need_request_id = ?", requestID).
			Updates(map[string]any{
				"need_request_status":           model.NeedRequestStatusRejected,
				"need_request_approved_by":      nil,
				"need_request_approved_at":      nil,
				"need_request_rejection_reason": reason,
			}).Error; err != nil {
			return err
		}
		req.NeedRequestStatus = model.NeedRequestStatusRejected
		req.NeedRequestApprovedBy = nil
		req.NeedRequestApprovedAt = nil
		req.NeedRequestRejectionReason = &reason
		return nil
	}); err != nil {
		return nil, err
	}

	_ = s.ActivityLog.LogNeedRequest(
		"تم رفض طلب حاجة للمسجد: "+mosque.MosqueName,
		"Need request rejected for mosque: "+mosque.MosqueName,
		&approverID, &req.NeedRequestID, nil,
	)
	s.Notifications.NeedRequestRejected(req.NeedRequestID, approverID, mosque.MosqueAdminUserID)

	return &req, nil
}

// MarkFulfilled: approved → fulfilled, invoked by the delivery workflow
// inside its own transaction when a referencing delivery completes.
// Requests not in approved state are left untouched.
func (s *NeedRequestService) MarkFulfilled(tx *gorm.DB, requestID uuid.UUID) error {
	db := s.DB
	if tx != nil {
		db = tx
	}

	var req model.NeedRequestModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "need_request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if !req.NeedRequestStatus.CanTransitionTo(model.NeedRequestStatusFulfilled) {
		return nil
	}

	return db.Model(&model.NeedRequestModel{}).
		Where("need_request_id = ?", requestID).
		Update("need_request_status", model.NeedRequestStatusFulfilled).Error
}
