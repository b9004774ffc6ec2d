package service

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sabeel_backend/internals/features/activitylog/model"
)

// ActivityLogService writes bilingual audit entries for the dashboard
// feed. The sink owns storage/retrieval; callers only supply message
// content and a typed entity reference.
type ActivityLogService struct {
	DB *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{DB: db}
}

func (s *ActivityLogService) Log(
	tx *gorm.DB,
	typ model.ActivityType,
	messageAr, messageEn string,
	userID *uuid.UUID,
	relatedID *uuid.UUID,
	relatedType string,
	metadata map[string]any,
) error {
	db := s.DB
	if tx != nil {
		db = tx
	}

	entry := model.ActivityLogModel{
		ActivityLogType:      typ,
		ActivityLogUserID:    userID,
		ActivityLogRelatedID: relatedID,
		ActivityLogMessageAr: messageAr,
		ActivityLogMessageEn: messageEn,
	}
	if relatedType != "" {
		entry.ActivityLogRelatedType = &relatedType
	}
	if metadata != nil {
		if raw, err := sonic.Marshal(metadata); err == nil {
			entry.ActivityLogMetadata = datatypes.JSON(raw)
		}
	}

	return db.Create(&entry).Error
}

func (s *ActivityLogService) LogDelivery(messageAr, messageEn string, userID *uuid.UUID, deliveryID *uuid.UUID, metadata map[string]any) error {
	return s.Log(nil, model.ActivityTypeDelivery, messageAr, messageEn, userID, deliveryID, "Delivery", metadata)
}

func (s *ActivityLogService) LogMosque(messageAr, messageEn string, userID *uuid.UUID, mosqueID *uuid.UUID, metadata map[string]any) error {
	return s.Log(nil, model.ActivityTypeMosque, messageAr, messageEn, userID, mosqueID, "Mosque", metadata)
}

func (s *ActivityLogService) LogTruck(messageAr, messageEn string, userID *uuid.UUID, truckID *uuid.UUID, metadata map[string]any) error {
	return s.Log(nil, model.ActivityTypeTruck, messageAr, messageEn, userID, truckID, "Truck", metadata)
}

func (s *ActivityLogService) LogNeedRequest(messageAr, messageEn string, userID *uuid.UUID, requestID *uuid.UUID, metadata map[string]any) error {
	return s.Log(nil, model.ActivityTypeOther, messageAr, messageEn, userID, requestID, "NeedRequest", metadata)
}
