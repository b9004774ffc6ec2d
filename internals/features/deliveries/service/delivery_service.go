package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityService "sabeel_backend/internals/features/activitylog/service"
	"sabeel_backend/internals/features/deliveries/model"
	mosqueModel "sabeel_backend/internals/features/mosques/model"
	mosqueService "sabeel_backend/internals/features/mosques/service"
	notifyService "sabeel_backend/internals/features/notifications/service"
	requestService "sabeel_backend/internals/features/requests/service"
	truckModel "sabeel_backend/internals/features/trucks/model"
)

var (
	// ErrInvalidTransition: the transition table forbids the requested
	// status change (including repeating a terminal status).
	ErrInvalidTransition = errors.New("delivery: invalid status transition")

	// ErrInvalidLiters: liters must be positive at creation.
	ErrInvalidLiters = errors.New("liters delivered must be positive")
)

// Transaction conflicts on the water-level path are the only condition
// retried automatically.
const maxDeliveredAttempts = 3

// DeliveryService owns the delivery state machine. The delivered
// transition increments the mosque water level and rescores it as one
// atomic unit, serialized per mosque via a row lock.
type DeliveryService struct {
	DB            *gorm.DB
	NeedScores    *mosqueService.NeedScoreService
	Requests      *requestService.NeedRequestService
	ActivityLog   *activityService.ActivityLogService
	Notifications *notifyService.NotificationService
}

func NewDeliveryService(
	db *gorm.DB,
	scores *mosqueService.NeedScoreService,
	requests *requestService.NeedRequestService,
	al *activityService.ActivityLogService,
	nf *notifyService.NotificationService,
) *DeliveryService {
	return &DeliveryService{DB: db, NeedScores: scores, Requests: requests, ActivityLog: al, Notifications: nf}
}

// Create starts a delivery in pending. No capacity check against the
// truck happens here; that stays with the request-validation layer.
func (s *DeliveryService) Create(truckID, mosqueID uuid.UUID, needRequestID *uuid.UUID, liters int, expectedDate time.Time, actorID uuid.UUID) (*model.DeliveryModel, error) {
	if liters <= 0 {
		return nil, ErrInvalidLiters
	}

	var truck truckModel.TruckModel
	if err := s.DB.First(&truck, "truck_id = ?", truckID).Error; err != nil {
		return nil, fmt.Errorf("truck: %w", err)
	}
	var mosque mosqueModel.MosqueModel
	if err := s.DB.First(&mosque, "mosque_id = ?", mosqueID).Error; err != nil {
		return nil, fmt.Errorf("mosque: %w", err)
	}
	if needRequestID != nil {
		var count int64
		if err := s.DB.Table("need_requests").Where("need_request_id = ?", *needRequestID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("need request: %w", gorm.ErrRecordNotFound)
		}
	}

	delivery := model.DeliveryModel{
		DeliveryTruckID:              truckID,
		DeliveryMosqueID:             mosqueID,
		DeliveryNeedRequestID:        needRequestID,
		DeliveryLitersDelivered:      liters,
		DeliveryStatus:               model.DeliveryStatusPending,
		DeliveryExpectedDeliveryDate: expectedDate,
	}
	if err := s.DB.Create(&delivery).Error; err != nil {
		return nil, err
	}

	_ = s.ActivityLog.LogDelivery(
		"تم إنشاء تسليم جديد للمسجد: "+mosque.MosqueName,
		"New delivery created for mosque: "+mosque.MosqueName,
		&actorID, &delivery.DeliveryID, nil,
	)

	return &delivery, nil
}

// SetStatus drives all transitions. The delivered branch runs as one
// transaction: lock delivery row, lock mosque row, increment the water
// level, rescore, and mark the referenced request fulfilled.
func (s *DeliveryService) SetStatus(deliveryID uuid.UUID, next model.DeliveryStatus, actorID uuid.UUID) (*model.DeliveryModel, error) {
	if !model.IsValidDeliveryStatus(next) {
		return nil, fmt.Errorf("unknown delivery status %q: %w", next, ErrInvalidTransition)
	}

	if next == model.DeliveryStatusDelivered {
		return s.setDelivered(deliveryID, actorID)
	}
	return s.setPlain(deliveryID, next, actorID)
}

func (s *DeliveryService) setPlain(deliveryID uuid.UUID, next model.DeliveryStatus, actorID uuid.UUID) (*model.DeliveryModel, error) {
	var delivery model.DeliveryModel

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&delivery, "delivery_id = ?", deliveryID).Error; err != nil {
			return err
		}
		if !delivery.DeliveryStatus.CanTransitionTo(next) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&model.DeliveryModel{}).
			Where("delivery_id = ?", deliveryID).
			Update("delivery_status", next).Error; err != nil {
			return err
		}
		delivery.DeliveryStatus = next
		return nil
	}); err != nil {
		return nil, err
	}

	_ = s.ActivityLog.LogDelivery(
		"تم تحديث حالة التسليم إلى: "+string(next),
		"Delivery status updated to: "+string(next),
		&actorID, &delivery.DeliveryID, nil,
	)

	return &delivery, nil
}

func (s *DeliveryService) setDelivered(deliveryID, actorID uuid.UUID) (*model.DeliveryModel, error) {
	var delivery model.DeliveryModel
	var mosque mosqueModel.MosqueModel

	var err error
	for attempt := 1; attempt <= maxDeliveredAttempts; attempt++ {
		err = s.deliverOnce(deliveryID, actorID, &delivery, &mosque)
		if err == nil || !isRetryableTxError(err) {
			break
		}
		log.Printf("[WARN] delivery %s: delivered tx conflict (attempt %d/%d): %v", deliveryID, attempt, maxDeliveredAttempts, err)
	}
	if err != nil {
		return nil, err
	}

	_ = s.ActivityLog.LogDelivery(
		fmt.Sprintf("تم تسليم %d لتر للمسجد: %s", delivery.DeliveryLitersDelivered, mosque.MosqueName),
		fmt.Sprintf("Delivered %d liters to mosque: %s", delivery.DeliveryLitersDelivered, mosque.MosqueName),
		&actorID, &delivery.DeliveryID,
		map[string]any{"liters": delivery.DeliveryLitersDelivered, "mosque_id": mosque.MosqueID},
	)
	s.Notifications.DeliveryDelivered(delivery.DeliveryID, actorID, mosque.MosqueAdminUserID)

	return &delivery, nil
}

func (s *DeliveryService) deliverOnce(deliveryID, actorID uuid.UUID, outDelivery *model.DeliveryModel, outMosque *mosqueModel.MosqueModel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var delivery model.DeliveryModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&delivery, "delivery_id = ?", deliveryID).Error; err != nil {
			return err
		}
		// The lock plus the transition table make the increment
		// exactly-once per delivery: a concurrent second call sees the
		// terminal status and fails here.
		if !delivery.DeliveryStatus.CanTransitionTo(model.DeliveryStatusDelivered) {
			return ErrInvalidTransition
		}

		var mosque mosqueModel.MosqueModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&mosque, "mosque_id = ?", delivery.DeliveryMosqueID).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&model.DeliveryModel{}).
			Where("delivery_id = ?", deliveryID).
			Updates(map[string]any{
				"delivery_status":               model.DeliveryStatusDelivered,
				"delivery_actual_delivery_date": now,
				"delivery_delivered_by":         actorID,
			}).Error; err != nil {
			return err
		}
		delivery.DeliveryStatus = model.DeliveryStatusDelivered
		delivery.DeliveryActualDeliveryDate = &now
		delivery.DeliveryDeliveredBy = &actorID

		if err := tx.Model(&mosqueModel.MosqueModel{}).
			Where("mosque_id = ?", mosque.MosqueID).
			Update("mosque_current_water_level", gorm.Expr("mosque_current_water_level + ?", delivery.DeliveryLitersDelivered)).Error; err != nil {
			return err
		}
		mosque.MosqueCurrentWaterLevel += delivery.DeliveryLitersDelivered

		if err := s.NeedScores.UpdateNeedLevel(tx, &mosque); err != nil {
			return err
		}

		if delivery.DeliveryNeedRequestID != nil {
			if err := s.Requests.MarkFulfilled(tx, *delivery.DeliveryNeedRequestID); err != nil {
				return err
			}
		}

		*outDelivery = delivery
		*outMosque = mosque
		return nil
	})
}

// UpdateProof attaches proof image metadata, drop-off geolocation and
// notes. Not a status transition.
func (s *DeliveryService) UpdateProof(deliveryID uuid.UUID, imagePath, imageURL *string, lat, lng *float64, notes *string) (*model.DeliveryModel, error) {
	var delivery model.DeliveryModel
	if err := s.DB.First(&delivery, "delivery_id = ?", deliveryID).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if imagePath != nil {
		updates["delivery_proof_image_path"] = *imagePath
		delivery.DeliveryProofImagePath = imagePath
	}
	if imageURL != nil {
		updates["delivery_proof_image_url"] = *imageURL
		delivery.DeliveryProofImageURL = imageURL
	}
	if lat != nil {
		updates["delivery_latitude"] = *lat
		delivery.DeliveryLatitude = lat
	}
	if lng != nil {
		updates["delivery_longitude"] = *lng
		delivery.DeliveryLongitude = lng
	}
	if notes != nil {
		updates["delivery_notes"] = *notes
		delivery.DeliveryNotes = notes
	}
	if len(updates) == 0 {
		return &delivery, nil
	}

	if err := s.DB.Model(&model.DeliveryModel{}).
		Where("delivery_id = ?", deliveryID).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

// isRetryableTxError matches Postgres serialization/deadlock failures
// (SQLSTATE 40001 / 40P01).
func isRetryableTxError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 40001") ||
		strings.Contains(msg, "SQLSTATE 40P01") ||
		strings.Contains(msg, "deadlock detected")
}
