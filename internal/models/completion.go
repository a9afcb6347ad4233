package models

import (
	"time"

	"gorm.io/gorm"
)

// Completion records one finished self-care session
type Completion struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ActivityID      string    `gorm:"not null;index" json:"activity_id"`
	CompletedAt     time.Time `gorm:"not null" json:"completed_at"`
	DurationSeconds int       `json:"duration_seconds"`
	Source          string    `gorm:"default:timer" json:"source"` // timer, manual
}
