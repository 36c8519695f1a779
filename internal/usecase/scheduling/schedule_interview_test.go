package scheduling

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

const hrUserID = 100

type scheduleFixture struct {
	repo   *fakeRepo
	locker *fakeLocker
	audit  *recordingAudit
	notify *recordingNotifier
	uc     *ScheduleInterview

	candidate   *models.Candidate
	interviewer *models.Interviewer
	block       *models.AvailabilityBlock
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()

	repo := newFakeRepo()
	repo.addUser(models.User{ID: hrUserID, FullName: "Priya HR", Email: "priya@kalvium.com", Role: models.RoleHR})

	panelistUser := repo.addUser(models.User{
		ID: 10, FullName: "Arun Panelist", Email: "arun@kalvium.com", Role: models.RolePanelist,
	})
	interviewer := repo.addInterviewer(models.Interviewer{UserID: panelistUser.ID, IsActive: true})

	candidate := repo.addCandidate(models.Candidate{
		ID: 3, FullName: "Meena S", Email: "meena@college.edu",
	})

	block := repo.addBlock(models.AvailabilityBlock{
		InterviewerID:       interviewer.ID,
		AvailableDate:       "2026-09-14",
		StartTime:           "09:00",
		EndTime:             "12:00",
		SlotDurationMinutes: 60,
		IsActive:            true,
	})

	locker := newFakeLocker()
	auditRec := &recordingAudit{}
	notifyRec := &recordingNotifier{}

	return &scheduleFixture{
		repo:        repo,
		locker:      locker,
		audit:       auditRec,
		notify:      notifyRec,
		uc:          NewScheduleInterview(repo, locker, auditRec, notifyRec),
		candidate:   candidate,
		interviewer: interviewer,
		block:       block,
	}
}

func (fx *scheduleFixture) request(start, end string) domain.BookingRequest {
	return domain.BookingRequest{
		CandidateID:   fx.candidate.ID,
		InterviewerID: fx.interviewer.ID,
		BlockID:       fx.block.ID,
		Date:          fx.block.AvailableDate,
		StartTime:     start,
		EndTime:       end,
	}
}

func TestScheduleInterview_Books(t *testing.T) {
	fx := newScheduleFixture(t)
	ctx := context.Background()

	out, err := fx.uc.Execute(ctx, hrUserID, fx.request("10:00", "11:00"))
	require.NoError(t, err)
	require.NotZero(t, out.SessionID)
	require.Equal(t, "Meena S", out.CandidateName)
	require.Equal(t, "Arun Panelist", out.InterviewerName)
	require.Equal(t, string(domain.StatusScheduled), out.Status)

	session, err := fx.repo.GetSessionByID(ctx, out.SessionID)
	require.NoError(t, err)
	require.True(t, session.IsActive)
	require.Equal(t, uint(hrUserID), session.ScheduledByHr)
	require.True(t, fx.block.IsBooked)

	require.Len(t, fx.audit.events, 1)
	require.Equal(t, "interview_scheduled", fx.audit.events[0].Action)
	require.Len(t, fx.notify.events, 1)
	require.Equal(t, "meena@college.edu", fx.notify.events[0].CandidateEmail)

	require.Equal(t, fx.locker.acquired, fx.locker.released)
}

func TestScheduleInterview_DoubleBookingRejected(t *testing.T) {
	fx := newScheduleFixture(t)
	ctx := context.Background()

	_, err := fx.uc.Execute(ctx, hrUserID, fx.request("10:00", "11:00"))
	require.NoError(t, err)

	other := fx.repo.addCandidate(models.Candidate{ID: 4, FullName: "Ravi K", Email: "ravi@college.edu"})

	req := fx.request("10:30", "11:30")
	req.CandidateID = other.ID
	_, err = fx.uc.Execute(ctx, hrUserID, req)
	require.Error(t, err)
	require.True(t, httperr.IsConflict(err))
	require.True(t, httperr.IsCode(err, "double_booked"))
}

func TestScheduleInterview_AdjacentSlotsBothBook(t *testing.T) {
	fx := newScheduleFixture(t)
	ctx := context.Background()

	_, err := fx.uc.Execute(ctx, hrUserID, fx.request("10:00", "11:00"))
	require.NoError(t, err)

	other := fx.repo.addCandidate(models.Candidate{ID: 4, FullName: "Ravi K", Email: "ravi@college.edu"})

	req := fx.request("11:00", "12:00")
	req.CandidateID = other.ID
	out, err := fx.uc.Execute(ctx, hrUserID, req)
	require.NoError(t, err)
	require.NotZero(t, out.SessionID)
}

func TestScheduleInterview_CompletedSessionStillOccupiesRange(t *testing.T) {
	// Only CANCELLED frees the interviewer's range; a completed session
	// keeps its time claimed.
	fx := newScheduleFixture(t)
	ctx := context.Background()

	fx.repo.sessions[50] = &models.InterviewSession{
		ID:            50,
		CandidateID:   88,
		InterviewerID: fx.interviewer.ID,
		BlockID:       fx.block.ID,
		InterviewDate: "2026-09-14",
		StartTime:     "10:00",
		EndTime:       "11:00",
		SessionStatus: string(domain.StatusCompleted),
		IsActive:      true,
	}

	_, err := fx.uc.Execute(ctx, hrUserID, fx.request("10:30", "11:30"))
	require.Error(t, err)
	require.True(t, httperr.IsCode(err, "double_booked"))
}

func TestScheduleInterview_CandidateSingleActiveSession(t *testing.T) {
	fx := newScheduleFixture(t)
	ctx := context.Background()

	first, err := fx.uc.Execute(ctx, hrUserID, fx.request("09:00", "10:00"))
	require.NoError(t, err)

	_, err = fx.uc.Execute(ctx, hrUserID, fx.request("11:00", "12:00"))
	require.Error(t, err)
	require.True(t, httperr.IsConflict(err))
	require.True(t, httperr.IsCode(err, "candidate_already_scheduled"))

	// Cancelling releases the candidate for a fresh booking.
	cancel := NewCancelInterview(fx.repo, fx.audit, fx.notify)
	require.NoError(t, cancel.Execute(ctx, hrUserID, first.SessionID))

	_, err = fx.uc.Execute(ctx, hrUserID, fx.request("11:00", "12:00"))
	require.NoError(t, err)
}

func TestScheduleInterview_ValidationFailures(t *testing.T) {
	type testcase struct {
		name     string
		mutate   func(fx *scheduleFixture, req *domain.BookingRequest)
		wantCode string
		wantKind func(error) bool
	}

	tests := [...]testcase{
		{
			name:     "unknown candidate",
			mutate:   func(_ *scheduleFixture, req *domain.BookingRequest) { req.CandidateID = 999 },
			wantCode: "candidate_not_found",
			wantKind: httperr.IsValidation,
		},
		{
			name: "inactive candidate",
			mutate: func(fx *scheduleFixture, _ *domain.BookingRequest) {
				fx.candidate.Status = models.CandidateInactive
			},
			wantCode: "candidate_not_active",
			wantKind: httperr.IsValidation,
		},
		{
			name:     "unknown interviewer",
			mutate:   func(_ *scheduleFixture, req *domain.BookingRequest) { req.InterviewerID = 999 },
			wantCode: "interviewer_not_found",
			wantKind: httperr.IsValidation,
		},
		{
			name: "inactive interviewer",
			mutate: func(fx *scheduleFixture, _ *domain.BookingRequest) {
				fx.interviewer.IsActive = false
			},
			wantCode: "interviewer_inactive",
			wantKind: httperr.IsValidation,
		},
		{
			name:     "unknown block",
			mutate:   func(_ *scheduleFixture, req *domain.BookingRequest) { req.BlockID = 999 },
			wantCode: "block_not_found",
			wantKind: httperr.IsValidation,
		},
		{
			name: "block belongs to someone else",
			mutate: func(fx *scheduleFixture, req *domain.BookingRequest) {
				other := fx.repo.addInterviewer(models.Interviewer{UserID: 77, IsActive: true})
				stray := fx.repo.addBlock(models.AvailabilityBlock{
					InterviewerID: other.ID,
					AvailableDate: "2026-09-14",
					StartTime:     "09:00",
					EndTime:       "12:00",
					IsActive:      true,
				})
				req.BlockID = stray.ID
			},
			wantCode: "block_owner_mismatch",
			wantKind: httperr.IsValidation,
		},
		{
			name: "time outside block",
			mutate: func(_ *scheduleFixture, req *domain.BookingRequest) {
				req.StartTime, req.EndTime = "13:00", "14:00"
			},
			wantCode: "outside_availability",
			wantKind: httperr.IsValidation,
		},
		{
			name: "date does not match block",
			mutate: func(_ *scheduleFixture, req *domain.BookingRequest) {
				req.Date = "2026-09-15"
			},
			wantCode: "outside_availability",
			wantKind: httperr.IsValidation,
		},
		{
			name: "malformed date",
			mutate: func(_ *scheduleFixture, req *domain.BookingRequest) {
				req.Date = "14-09-2026"
			},
			wantCode: "invalid_date",
			wantKind: httperr.IsValidation,
		},
		{
			name: "start not before end",
			mutate: func(_ *scheduleFixture, req *domain.BookingRequest) {
				req.StartTime, req.EndTime = "11:00", "10:00"
			},
			wantCode: "invalid_time_range",
			wantKind: httperr.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newScheduleFixture(t)
			req := fx.request("10:00", "11:00")
			tt.mutate(fx, &req)

			_, err := fx.uc.Execute(context.Background(), hrUserID, req)
			require.Error(t, err)
			require.True(t, tt.wantKind(err))
			require.True(t, httperr.IsCode(err, tt.wantCode), "got %v", err)
			require.Empty(t, fx.repo.sessions)
		})
	}
}

func TestScheduleInterview_LockContention(t *testing.T) {
	fx := newScheduleFixture(t)

	lockKey := fmt.Sprintf("sched:interviewer:%d", fx.interviewer.ID)
	fx.locker.held[lockKey] = true

	_, err := fx.uc.Execute(context.Background(), hrUserID, fx.request("10:00", "11:00"))
	require.Error(t, err)
	require.True(t, httperr.IsConflict(err))
	require.True(t, httperr.IsCode(err, "interviewer_busy"))
	require.Empty(t, fx.repo.sessions)
}

func TestScheduleInterview_StorageBackstop(t *testing.T) {
	// Even when the validator read sees a free calendar, the insert itself
	// re-checks and rejects an overlap written in between.
	fx := newScheduleFixture(t)
	ctx := context.Background()

	fx.repo.sessions[99] = &models.InterviewSession{
		ID:            99,
		CandidateID:   88,
		InterviewerID: fx.interviewer.ID,
		BlockID:       fx.block.ID,
		InterviewDate: "2026-09-14",
		StartTime:     "10:00",
		EndTime:       "11:00",
		SessionStatus: string(domain.StatusScheduled),
		IsActive:      true,
	}

	err := fx.repo.CreateSessionIfFree(ctx, &models.InterviewSession{
		CandidateID:   fx.candidate.ID,
		InterviewerID: fx.interviewer.ID,
		BlockID:       fx.block.ID,
		InterviewDate: "2026-09-14",
		StartTime:     "10:30",
		EndTime:       "11:30",
		SessionStatus: string(domain.StatusScheduled),
		IsActive:      true,
	})
	require.Error(t, err)
	require.True(t, httperr.IsCode(err, "double_booked"))
}
