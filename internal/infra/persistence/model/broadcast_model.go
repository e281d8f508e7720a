package model

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastNotificationModel is the GORM model for the admin_notifications table.
// Rows are authored by the admin tool; this service only reads them.
type BroadcastNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:text;not null"`
	Body      string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(64);not null;default:'announcement'"`
	Priority  string    `gorm:"type:varchar(16);not null;default:'normal'"`
	Active    bool      `gorm:"not null;default:true;index:idx_admin_notifications_active"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// TableName specifies the table name for the BroadcastNotificationModel.
func (BroadcastNotificationModel) TableName() string {
	return "admin_notifications"
}
