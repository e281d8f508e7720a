// Package model contains the GORM data models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryTokenModel is the GORM model for the fcm_tokens table.
// The token value itself is the primary key, matching how the push platform
// identifies a device registration.
type DeliveryTokenModel struct {
	Token         string     `gorm:"type:varchar(512);primary_key"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_fcm_tokens_user_id"`
	DeviceInfo    DeviceInfo `gorm:"type:jsonb;serializer:json"`
	IsDevModeStub bool       `gorm:"not null;default:false"`
	CreatedAt     time.Time  `gorm:"not null;default:now()"`
	UpdatedAt     time.Time  `gorm:"not null;default:now()"`
	LastUsed      time.Time  `gorm:"not null;default:now()"`
}

// DeviceInfo is the JSON shape stored in the device_info column.
type DeviceInfo struct {
	UserAgent string `json:"userAgent"`
	Platform  string `json:"platform"`
	Language  string `json:"language"`
}

// TableName specifies the table name for the DeliveryTokenModel.
func (DeliveryTokenModel) TableName() string {
	return "fcm_tokens"
}
