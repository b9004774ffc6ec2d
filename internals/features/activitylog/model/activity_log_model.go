package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityType buckets log entries for the dashboard feed.
type ActivityType string

const (
	ActivityTypeDelivery ActivityType = "delivery"
	ActivityTypeMosque   ActivityType = "mosque"
	ActivityTypeUser     ActivityType = "user"
	ActivityTypeTruck    ActivityType = "truck"
	ActivityTypeOther    ActivityType = "other"
)

// ActivityLogModel is the audit sink record: every workflow transition
// writes one bilingual entry plus a typed reference to the entity.
type ActivityLogModel struct {
	ActivityLogID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"activity_log_id"`
	ActivityLogType        ActivityType   `gorm:"type:varchar(15);not null;index:idx_activity_logs_type" json:"activity_log_type"`
	ActivityLogUserID      *uuid.UUID     `gorm:"type:uuid;index:idx_activity_logs_user" json:"activity_log_user_id,omitempty"`
	ActivityLogRelatedID   *uuid.UUID     `gorm:"type:uuid" json:"activity_log_related_id,omitempty"`
	ActivityLogRelatedType *string        `gorm:"type:varchar(100)" json:"activity_log_related_type,omitempty"`
	ActivityLogMessageAr   string         `gorm:"type:text;not null" json:"activity_log_message_ar"`
	ActivityLogMessageEn   string         `gorm:"type:text;not null" json:"activity_log_message_en"`
	ActivityLogMetadata    datatypes.JSON `json:"activity_log_metadata,omitempty"`
	ActivityLogCreatedAt   time.Time      `gorm:"autoCreateTime;index:idx_activity_logs_created_at" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
