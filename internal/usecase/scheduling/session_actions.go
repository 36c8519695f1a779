package scheduling

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/audit"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/clock"
	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/notify"
)

// ownSession resolves the caller's interviewer profile and the session,
// enforcing that the session is assigned to the caller.
func ownSession(
	ctx context.Context,
	repo domain.Repository,
	sessionID uint,
	callerUserID uint,
) (*models.InterviewSession, *models.Interviewer, error) {

	interviewer, err := repo.FindInterviewerByUserID(ctx, callerUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, httperr.NotFound("interviewer_not_found", "interviewer profile not found")
		}
		return nil, nil, err
	}

	session, err := repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, httperr.NotFound("session_not_found", "interview session not found")
		}
		return nil, nil, err
	}

	if session.InterviewerID != interviewer.ID {
		return nil, nil, httperr.Validation("not_session_owner",
			"this session is not assigned to you")
	}

	return session, interviewer, nil
}

// ======================================================
// Add meeting link
// ======================================================

type AddMeetingLink struct {
	repo   domain.Repository
	audit  auditTrail
	notify notifier
	clk    clock.Clock
}

func NewAddMeetingLink(
	repo domain.Repository,
	auditTrail auditTrail,
	notifier notifier,
	clk clock.Clock,
) *AddMeetingLink {
	return &AddMeetingLink{
		repo:   repo,
		audit:  auditTrail,
		notify: notifier,
		clk:    clk,
	}
}

func (uc *AddMeetingLink) Execute(
	ctx context.Context,
	callerUserID uint,
	sessionID uint,
	link string,
) (*models.InterviewSession, error) {

	session, _, err := ownSession(ctx, uc.repo, sessionID, callerUserID)
	if err != nil {
		return nil, err
	}

	if err := domain.AddMeetingLink(session, strings.TrimSpace(link), uc.clk.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerUserID,
		Action:   "meeting_link_added",
		Entity:   "interview_session",
		EntityID: &session.ID,
	})

	ev := notify.Event{
		Type:          notify.EventLinkAdded,
		SessionID:     session.ID,
		InterviewDate: session.InterviewDate,
		StartTime:     session.StartTime,
		EndTime:       session.EndTime,
		MeetingLink:   session.MeetingLink,
	}
	if candidate, err := uc.repo.GetCandidateByID(ctx, session.CandidateID); err == nil {
		ev.CandidateName = candidate.FullName
		ev.CandidateEmail = candidate.Email
	}
	uc.notify.Dispatch(ev)

	return session, nil
}

// ======================================================
// Submit feedback
// ======================================================

type SubmitFeedback struct {
	repo  domain.Repository
	audit auditTrail
	clk   clock.Clock
}

func NewSubmitFeedback(
	repo domain.Repository,
	auditTrail auditTrail,
	clk clock.Clock,
) *SubmitFeedback {
	return &SubmitFeedback{
		repo:  repo,
		audit: auditTrail,
		clk:   clk,
	}
}

func (uc *SubmitFeedback) Execute(
	ctx context.Context,
	callerUserID uint,
	sessionID uint,
	result string,
	remarks string,
) (*models.InterviewSession, error) {

	session, _, err := ownSession(ctx, uc.repo, sessionID, callerUserID)
	if err != nil {
		return nil, err
	}

	if err := domain.SubmitFeedback(
		session, domain.Result(result), remarks, uc.clk.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerUserID,
		Action:   "feedback_submitted",
		Entity:   "interview_session",
		EntityID: &session.ID,
		Metadata: map[string]string{"result": session.InterviewResult},
	})

	return session, nil
}

// ======================================================
// Mark status (operator path: NO_SHOW / RESCHEDULED)
// ======================================================

type MarkSessionStatus struct {
	repo  domain.Repository
	audit auditTrail
}

func NewMarkSessionStatus(repo domain.Repository, auditTrail auditTrail) *MarkSessionStatus {
	return &MarkSessionStatus{repo: repo, audit: auditTrail}
}

func (uc *MarkSessionStatus) Execute(
	ctx context.Context,
	adminUserID uint,
	sessionID uint,
	status string,
) (*models.InterviewSession, error) {

	session, err := uc.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.NotFound("session_not_found", "interview session not found")
		}
		return nil, err
	}

	if err := domain.MarkStatus(session, domain.Status(status)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminUserID,
		Action:   "session_status_marked",
		Entity:   "interview_session",
		EntityID: &session.ID,
		Metadata: map[string]string{"status": session.SessionStatus},
	})

	return session, nil
}
