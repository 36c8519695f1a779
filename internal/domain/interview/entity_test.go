package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

func openSession(status Status) *models.InterviewSession {
	return &models.InterviewSession{
		ID:            42,
		CandidateID:   3,
		InterviewerID: 5,
		InterviewDate: "2026-09-14",
		StartTime:     "10:00",
		EndTime:       "11:00",
		SessionStatus: string(status),
		IsActive:      true,
	}
}

func TestCancel(t *testing.T) {
	t.Run("scheduled session cancels", func(t *testing.T) {
		s := openSession(StatusScheduled)
		require.NoError(t, Cancel(s))
		require.Equal(t, string(StatusCancelled), s.SessionStatus)
		require.False(t, s.IsActive)
	})

	t.Run("link added session cancels", func(t *testing.T) {
		s := openSession(StatusLinkAdded)
		require.NoError(t, Cancel(s))
		require.Equal(t, string(StatusCancelled), s.SessionStatus)
	})

	t.Run("completed session rejects cancel", func(t *testing.T) {
		s := openSession(StatusCompleted)
		err := Cancel(s)
		require.Error(t, err)
		require.True(t, httperr.IsValidation(err))
		require.True(t, httperr.IsCode(err, "session_completed"))
		require.Equal(t, string(StatusCompleted), s.SessionStatus)
	})

	t.Run("inactive session rejects cancel", func(t *testing.T) {
		s := openSession(StatusCancelled)
		s.IsActive = false
		err := Cancel(s)
		require.Error(t, err)
		require.True(t, httperr.IsCode(err, "session_inactive"))
	})
}

func TestAddMeetingLink(t *testing.T) {
	now := time.Date(2026, 9, 13, 18, 0, 0, 0, time.UTC)

	t.Run("scheduled session gains link", func(t *testing.T) {
		s := openSession(StatusScheduled)
		require.NoError(t, AddMeetingLink(s, "https://meet.example.com/abc", now))
		require.Equal(t, string(StatusLinkAdded), s.SessionStatus)
		require.Equal(t, "https://meet.example.com/abc", s.MeetingLink)
		require.NotNil(t, s.LinkAddedAt)
		require.Equal(t, now, *s.LinkAddedAt)
	})

	t.Run("re-link overwrites", func(t *testing.T) {
		s := openSession(StatusLinkAdded)
		s.MeetingLink = "https://meet.example.com/old"
		require.NoError(t, AddMeetingLink(s, "https://meet.example.com/new", now))
		require.Equal(t, "https://meet.example.com/new", s.MeetingLink)
		require.Equal(t, string(StatusLinkAdded), s.SessionStatus)
	})

	t.Run("empty link rejected", func(t *testing.T) {
		err := AddMeetingLink(openSession(StatusScheduled), "", now)
		require.True(t, httperr.IsValidation(err))
		require.True(t, httperr.IsCode(err, "missing_meeting_link"))
	})

	t.Run("cancelled session rejected", func(t *testing.T) {
		s := openSession(StatusCancelled)
		s.IsActive = false
		err := AddMeetingLink(s, "https://meet.example.com/abc", now)
		require.True(t, httperr.IsConflict(err))
	})
}

func TestSubmitFeedback(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 30, 0, 0, time.UTC)

	t.Run("records result and completes", func(t *testing.T) {
		s := openSession(StatusLinkAdded)
		require.NoError(t, SubmitFeedback(s, ResultSelected, "strong candidate", now))
		require.Equal(t, string(StatusCompleted), s.SessionStatus)
		require.Equal(t, string(ResultSelected), s.InterviewResult)
		require.Equal(t, "strong candidate", s.Remarks)
		require.NotNil(t, s.ResultUpdatedAt)
	})

	t.Run("empty remarks keep previous", func(t *testing.T) {
		s := openSession(StatusScheduled)
		s.Remarks = "pre-interview note"
		require.NoError(t, SubmitFeedback(s, ResultWaitingList, "", now))
		require.Equal(t, "pre-interview note", s.Remarks)
	})

	t.Run("invalid result rejected", func(t *testing.T) {
		err := SubmitFeedback(openSession(StatusScheduled), Result("HIRED"), "", now)
		require.True(t, httperr.IsValidation(err))
		require.True(t, httperr.IsCode(err, "invalid_result"))
	})

	t.Run("cancelled session rejected", func(t *testing.T) {
		s := openSession(StatusCancelled)
		s.IsActive = false
		err := SubmitFeedback(s, ResultRejected, "", now)
		require.True(t, httperr.IsConflict(err))
	})
}

func TestMarkStatus(t *testing.T) {
	t.Run("no show deactivates", func(t *testing.T) {
		s := openSession(StatusScheduled)
		require.NoError(t, MarkStatus(s, StatusNoShow))
		require.Equal(t, string(StatusNoShow), s.SessionStatus)
		require.False(t, s.IsActive)
	})

	t.Run("rescheduled deactivates", func(t *testing.T) {
		s := openSession(StatusLinkAdded)
		require.NoError(t, MarkStatus(s, StatusRescheduled))
		require.Equal(t, string(StatusRescheduled), s.SessionStatus)
		require.False(t, s.IsActive)
	})

	t.Run("only terminal operator statuses allowed", func(t *testing.T) {
		err := MarkStatus(openSession(StatusScheduled), StatusCompleted)
		require.True(t, httperr.IsValidation(err))
		require.True(t, httperr.IsCode(err, "invalid_status"))
	})

	t.Run("completed session rejected", func(t *testing.T) {
		err := MarkStatus(openSession(StatusCompleted), StatusNoShow)
		require.True(t, httperr.IsConflict(err))
	})
}
