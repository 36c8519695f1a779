package models

import "time"

const (
	RoleAdmin     = "ADMIN"
	RoleHR        = "HR"
	RolePanelist  = "INTERVIEW_PANELIST"
	RoleFaculty   = "FACULTY"
	RoleCandidate = "STUDENT"
)

const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Role   string `gorm:"size:30;default:'STUDENT'" json:"role"`
	Status string `gorm:"size:20;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanSubmitAvailability reports whether this role publishes interview time.
func (u *User) CanSubmitAvailability() bool {
	return u.Role == RolePanelist || u.Role == RoleFaculty
}
