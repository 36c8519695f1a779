package scheduling

import (
	"context"

	"gorm.io/gorm"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/audit"
	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/notify"
)

type CancelInterview struct {
	repo   domain.Repository
	audit  auditTrail
	notify notifier
}

func NewCancelInterview(
	repo domain.Repository,
	auditTrail auditTrail,
	notifier notifier,
) *CancelInterview {
	return &CancelInterview{
		repo:   repo,
		audit:  auditTrail,
		notify: notifier,
	}
}

func (uc *CancelInterview) Execute(
	ctx context.Context,
	hrUserID uint,
	sessionID uint,
) error {

	session, err := uc.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return httperr.NotFound("session_not_found", "interview session not found")
		}
		return err
	}

	if err := domain.Cancel(session); err != nil {
		return err
	}

	if err := uc.repo.CancelSession(ctx, session); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &hrUserID,
		Action:   "interview_cancelled",
		Entity:   "interview_session",
		EntityID: &session.ID,
	})

	ev := notify.Event{
		Type:          notify.EventCancelled,
		SessionID:     session.ID,
		InterviewDate: session.InterviewDate,
		StartTime:     session.StartTime,
		EndTime:       session.EndTime,
	}
	if candidate, err := uc.repo.GetCandidateByID(ctx, session.CandidateID); err == nil {
		ev.CandidateName = candidate.FullName
		ev.CandidateEmail = candidate.Email
	}
	if interviewer, err := uc.repo.GetInterviewerByID(ctx, session.InterviewerID); err == nil {
		if user, err := uc.repo.GetUserByID(ctx, interviewer.UserID); err == nil {
			ev.InterviewerName = user.FullName
			ev.InterviewerEmail = user.Email
		}
	}
	uc.notify.Dispatch(ev)

	return nil
}
