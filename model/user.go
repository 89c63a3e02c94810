package model

import (
	"time"
)

// User is an account that owns checklists. ID is a UUID assigned at
// registration.
type User struct {
	ID           string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Username     string    `gorm:"column:username;type:varchar(256);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
