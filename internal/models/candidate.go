package models

import "time"

const (
	CandidateActive   = "ACTIVE"
	CandidateInactive = "INACTIVE"
	CandidatePlaced   = "PLACED"
)

type Candidate struct {
	ID     uint `gorm:"primaryKey" json:"candidate_id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	MobileNumber string `gorm:"size:20" json:"mobile_number"`
	CollegeName  string `gorm:"size:150" json:"college_name"`

	Status string `gorm:"size:20;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
