package models

import "time"

type Interviewer struct {
	ID     uint `gorm:"primaryKey" json:"interviewer_id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	MaxInterviewsPerDay int  `gorm:"default:5" json:"max_interviews_per_day"`
	IsActive            bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
