package models

import "time"

// AvailabilityBlock is one contiguous window an interviewer declared for a
// date. Blocks are stored raw; fixed-duration slots are derived on read.
type AvailabilityBlock struct {
	ID            uint        `gorm:"primaryKey" json:"availability_id"`
	InterviewerID uint        `gorm:"index:idx_block_owner_date;not null" json:"interviewer_id"`
	Interviewer   Interviewer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AvailableDate string `gorm:"index:idx_block_owner_date;size:10;not null" json:"available_date"`
	StartTime     string `gorm:"size:5;not null" json:"start_time"`
	EndTime       string `gorm:"size:5;not null" json:"end_time"`

	SlotDurationMinutes     int `gorm:"default:60" json:"slot_duration_minutes"`
	MaxConcurrentInterviews int `gorm:"default:1" json:"max_concurrent_interviews"`

	Notes string `gorm:"size:500" json:"notes"`

	IsBooked bool `gorm:"default:false" json:"is_booked"`
	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
