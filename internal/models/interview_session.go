package models

import "time"

type InterviewSession struct {
	ID uint `gorm:"primaryKey" json:"session_id"`

	CandidateID uint      `gorm:"index;not null" json:"candidate_id"`
	Candidate   Candidate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	InterviewerID uint        `gorm:"index:idx_session_interviewer_date;not null" json:"interviewer_id"`
	Interviewer   Interviewer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ScheduledByHr uint `gorm:"not null" json:"scheduled_by_hr"`

	BlockID uint              `gorm:"not null" json:"availability_id"`
	Block   AvailabilityBlock `gorm:"foreignKey:BlockID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	InterviewDate string `gorm:"index:idx_session_interviewer_date;size:10;not null" json:"interview_date"`
	StartTime     string `gorm:"size:5;not null" json:"start_time"`
	EndTime       string `gorm:"size:5;not null" json:"end_time"`

	MeetingLink string     `gorm:"size:500" json:"meeting_link"`
	LinkAddedAt *time.Time `json:"link_added_at"`

	SessionStatus string `gorm:"size:20;default:'SCHEDULED'" json:"session_status"`

	InterviewResult string     `gorm:"size:20" json:"interview_result"`
	ResultUpdatedAt *time.Time `json:"result_updated_at"`

	Remarks string `gorm:"type:text" json:"remarks"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
