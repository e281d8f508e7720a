package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonalNotificationModel is the GORM model for the notifications table.
// Rows are addressed to a single identity and carry the remote read flag.
type PersonalNotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_user_id"`
	Type      string            `gorm:"type:varchar(64);not null"`
	Title     string            `gorm:"type:text;not null"`
	Body      string            `gorm:"type:text;not null"`
	Icon      string            `gorm:"type:text"`
	Data      map[string]string `gorm:"type:jsonb;serializer:json"`
	Read      bool              `gorm:"not null;default:false;index:idx_notifications_read"`
	ReadAt    *time.Time        `gorm:"type:timestamptz"`
	Delivered bool              `gorm:"not null;default:false"`
	CreatedAt time.Time         `gorm:"not null;default:now();index:idx_notifications_created_at,sort:desc"`
	ExpiresAt *time.Time        `gorm:"type:timestamptz"`
}

// TableName specifies the table name for the PersonalNotificationModel.
func (PersonalNotificationModel) TableName() string {
	return "notifications"
}
