package model

import (
	"time"
)

// RequestGuard claims one (user, request fingerprint) pair until it expires
type RequestGuard struct {
	UserID      string    `gorm:"primaryKey;size:255"`
	Fingerprint string    `gorm:"primaryKey;size:64"`
	Owner       string    `gorm:"not null;size:64"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for RequestGuard
func (RequestGuard) TableName() string {
	return "request_guards"
}
