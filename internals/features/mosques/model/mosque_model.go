package model

import (
	"time"

	"github.com/google/uuid"
)

// NeedLevel is the tier derived from a need score. Shared by mosques
// and supply lines; never written by clients, only by the scorers.
type NeedLevel string

const (
	NeedLevelLow    NeedLevel = "Low"
	NeedLevelMedium NeedLevel = "Medium"
	NeedLevelHigh   NeedLevel = "High"
)

type MosqueModel struct {
	MosqueID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"mosque_id"`
	MosqueName               string     `gorm:"type:varchar(150);not null" json:"mosque_name"`
	MosqueLocation           string     `gorm:"type:text;not null" json:"mosque_location"`
	MosqueLatitude           *float64   `gorm:"type:decimal(10,8)" json:"mosque_latitude,omitempty"`
	MosqueLongitude          *float64   `gorm:"type:decimal(11,8)" json:"mosque_longitude,omitempty"`
	MosqueCapacity           int        `gorm:"not null" json:"mosque_capacity"` // liters
	MosqueCurrentWaterLevel  int        `gorm:"not null;default:0" json:"mosque_current_water_level"`
	MosqueRequiredWaterLevel int        `gorm:"not null" json:"mosque_required_water_level"`
	MosqueNeedScore          int        `gorm:"not null;default:0;index:idx_mosques_need_score" json:"mosque_need_score"`
	MosqueNeedLevel          NeedLevel  `gorm:"type:varchar(10);not null;default:'Medium'" json:"mosque_need_level"`
	MosqueDescription        *string    `gorm:"type:text" json:"mosque_description,omitempty"`
	MosqueAdminUserID        *uuid.UUID `gorm:"type:uuid;index:idx_mosques_admin" json:"mosque_admin_user_id,omitempty"`
	MosqueIsActive           bool       `gorm:"not null;default:true" json:"mosque_is_active"`
	MosqueCreatedAt          time.Time  `gorm:"autoCreateTime" json:"mosque_created_at"`
	MosqueUpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"mosque_updated_at"`

	Supplies []MosqueSupplyModel `gorm:"foreignKey:MosqueSupplyMosqueID;references:MosqueID" json:"supplies,omitempty"`
}

func (MosqueModel) TableName() string {
	return "mosques"
}
