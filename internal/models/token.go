package models

import "time"

// AdminPushToken is a push delivery token registered by an admin device.
// One row per admin; re-registering overwrites the previous token.
type AdminPushToken struct {
	AdminID   string    `json:"adminId" gorm:"type:varchar(64);primary_key"`
	Token     string    `json:"token"   gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (AdminPushToken) TableName() string {
	return "admin_push_tokens"
}
