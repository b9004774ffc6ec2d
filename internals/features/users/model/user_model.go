package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName         string    `gorm:"type:varchar(100);not null" json:"user_name"`
	UserEmail        string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"user_email"`
	UserPasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	UserRole         string    `gorm:"type:varchar(25);not null;default:'donor';index:idx_users_role" json:"user_role"`
	UserIsActive     bool      `gorm:"not null;default:true" json:"user_is_active"`
	UserCreatedAt    time.Time `gorm:"autoCreateTime" json:"user_created_at"`
	UserUpdatedAt    time.Time `gorm:"autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
