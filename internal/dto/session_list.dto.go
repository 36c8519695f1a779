package dto

import "time"

type SessionListDTO struct {
	SessionID uint `json:"session_id"`

	CandidateID    uint   `json:"candidate_id"`
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`

	InterviewerID   uint   `json:"interviewer_id"`
	InterviewerName string `json:"interviewer_name,omitempty"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Status          string `json:"status"`
	MeetingLink     string `json:"meeting_link,omitempty"`
	InterviewResult string `json:"interview_result,omitempty"`
	Remarks         string `json:"remarks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type ScheduleResultDTO struct {
	SessionID uint `json:"session_id"`

	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`

	InterviewerName string `json:"interviewer_name"`

	Date      string `json:"interview_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}
