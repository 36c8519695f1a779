package interview

import (
	"time"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(s *models.InterviewSession) error {
	if !s.IsActive {
		return httperr.Validation("session_inactive", "interview session is already inactive")
	}
	if Status(s.SessionStatus) == StatusCompleted {
		return httperr.Validation("session_completed", "cannot cancel a completed interview")
	}
	if !CanTransition(Status(s.SessionStatus), StatusCancelled) {
		return httperr.Validation("invalid_state", "session cannot be cancelled from its current state")
	}

	s.SessionStatus = string(StatusCancelled)
	s.IsActive = false
	return nil
}

func AddMeetingLink(s *models.InterviewSession, link string, now time.Time) error {
	if link == "" {
		return httperr.Validation("missing_meeting_link", "meeting link is required")
	}
	if !s.IsActive || !CanTransition(Status(s.SessionStatus), StatusLinkAdded) {
		return httperr.Conflict("invalid_state", "cannot add a meeting link to this session")
	}

	s.MeetingLink = link
	s.LinkAddedAt = &now
	s.SessionStatus = string(StatusLinkAdded)
	return nil
}

func SubmitFeedback(s *models.InterviewSession, result Result, remarks string, now time.Time) error {
	if !ValidResult(result) {
		return httperr.Validation("invalid_result", "result must be SELECTED, REJECTED or WAITING_LIST")
	}
	if !s.IsActive || !CanTransition(Status(s.SessionStatus), StatusCompleted) {
		return httperr.Conflict("invalid_state", "cannot record feedback for this session")
	}

	s.InterviewResult = string(result)
	s.ResultUpdatedAt = &now
	if remarks != "" {
		s.Remarks = remarks
	}
	s.SessionStatus = string(StatusCompleted)
	return nil
}

// MarkStatus applies an operator-driven terminal status (NO_SHOW or
// RESCHEDULED); no automatic rules exist for these beyond the table.
func MarkStatus(s *models.InterviewSession, to Status) error {
	if to != StatusNoShow && to != StatusRescheduled {
		return httperr.Validation("invalid_status", "only NO_SHOW and RESCHEDULED may be set directly")
	}
	if !s.IsActive || !CanTransition(Status(s.SessionStatus), to) {
		return httperr.Conflict("invalid_state", "session cannot move to "+string(to))
	}

	s.SessionStatus = string(to)
	s.IsActive = false
	return nil
}
