package models

import (
	"time"

	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
)

// User represents the canonical identity entity. Emails are stored lowercased
// so the unique index doubles as the case-insensitive duplicate check.
type User struct {
	ID           int64      `gorm:"primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Email        string     `gorm:"type:text;not null;uniqueIndex"`
	Address      string     `gorm:"column:address"`
	Role         enums.Role `gorm:"column:role;type:text;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
