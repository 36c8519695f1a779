package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/audit"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/clock"
	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/dto"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/lock"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/notify"
)

const scheduleLockTTL = 10 * time.Second

// ======================================================
// USE CASE
// ======================================================

type ScheduleInterview struct {
	repo      domain.Repository
	validator *BookingValidator
	locker    lock.Locker
	audit     auditTrail
	notify    notifier
}

func NewScheduleInterview(
	repo domain.Repository,
	locker lock.Locker,
	auditTrail auditTrail,
	notifier notifier,
) *ScheduleInterview {
	return &ScheduleInterview{
		repo:      repo,
		validator: NewBookingValidator(repo),
		locker:    locker,
		audit:     auditTrail,
		notify:    notifier,
	}
}

func (uc *ScheduleInterview) Execute(
	ctx context.Context,
	hrUserID uint,
	in domain.BookingRequest,
) (*dto.ScheduleResultDTO, error) {

	if !clock.ValidDate(in.Date) {
		return nil, httperr.Validation("invalid_date", "interview date must be YYYY-MM-DD")
	}
	if !clock.ValidTime(in.StartTime) || !clock.ValidTime(in.EndTime) {
		return nil, httperr.Validation("invalid_time", "times must be HH:MM")
	}
	if in.StartTime >= in.EndTime {
		return nil, httperr.Validation("invalid_time_range", "start time must be before end time")
	}

	// Serialize all bookings per interviewer across the validate+write
	// window. The repository re-checks under row locks on insert, so an
	// expired lock still cannot produce a double booking.
	lockKey := fmt.Sprintf("sched:interviewer:%d", in.InterviewerID)
	token, err := uc.locker.Acquire(ctx, lockKey, scheduleLockTTL)
	if err != nil {
		if err == lock.ErrNotAcquired {
			return nil, httperr.Conflict("interviewer_busy",
				"another booking for this interviewer is in progress, retry shortly")
		}
		return nil, err
	}
	defer func() {
		_ = uc.locker.Release(ctx, lockKey, token)
	}()

	candidate, interviewer, block, err := uc.validator.Validate(ctx, in)
	if err != nil {
		return nil, err
	}

	session := &models.InterviewSession{
		CandidateID:   in.CandidateID,
		InterviewerID: in.InterviewerID,
		ScheduledByHr: hrUserID,
		BlockID:       block.ID,
		InterviewDate: in.Date,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		SessionStatus: string(domain.StatusScheduled),
		Remarks:       in.Remarks,
		IsActive:      true,
	}

	if err := uc.repo.CreateSessionIfFree(ctx, session); err != nil {
		return nil, err
	}

	interviewerName, interviewerEmail := uc.interviewerContact(ctx, interviewer)

	uc.audit.Dispatch(audit.Event{
		UserID:   &hrUserID,
		Action:   "interview_scheduled",
		Entity:   "interview_session",
		EntityID: &session.ID,
	})

	uc.notify.Dispatch(notify.Event{
		Type:             notify.EventScheduled,
		SessionID:        session.ID,
		InterviewDate:    session.InterviewDate,
		StartTime:        session.StartTime,
		EndTime:          session.EndTime,
		CandidateName:    candidate.FullName,
		CandidateEmail:   candidate.Email,
		InterviewerName:  interviewerName,
		InterviewerEmail: interviewerEmail,
	})

	return &dto.ScheduleResultDTO{
		SessionID:       session.ID,
		CandidateName:   candidate.FullName,
		CandidateEmail:  candidate.Email,
		InterviewerName: interviewerName,
		Date:            session.InterviewDate,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		Status:          session.SessionStatus,
	}, nil
}

func (uc *ScheduleInterview) interviewerContact(
	ctx context.Context,
	interviewer *models.Interviewer,
) (string, string) {

	user, err := uc.repo.GetUserByID(ctx, interviewer.UserID)
	if err != nil {
		return "", ""
	}
	return user.FullName, user.Email
}
