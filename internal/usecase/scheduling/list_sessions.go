package scheduling

import (
	"context"

	"gorm.io/gorm"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/clock"
	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/dto"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

type ListSessions struct {
	repo domain.Repository
	clk  clock.Clock
}

func NewListSessions(repo domain.Repository, clk clock.Clock) *ListSessions {
	return &ListSessions{repo: repo, clk: clk}
}

func (uc *ListSessions) ByCandidate(
	ctx context.Context,
	candidateID uint,
) ([]dto.SessionListDTO, error) {

	sessions, err := uc.repo.ListSessionsByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return uc.toDTOs(ctx, sessions), nil
}

// ByInterviewerUser lists the caller's own sessions (panelist dashboard).
func (uc *ListSessions) ByInterviewerUser(
	ctx context.Context,
	userID uint,
) ([]dto.SessionListDTO, error) {

	interviewer, err := uc.repo.FindInterviewerByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.NotFound("interviewer_not_found", "interviewer profile not found")
		}
		return nil, err
	}

	sessions, err := uc.repo.ListSessionsByInterviewer(ctx, interviewer.ID)
	if err != nil {
		return nil, err
	}
	return uc.toDTOs(ctx, sessions), nil
}

func (uc *ListSessions) AllActive(ctx context.Context) ([]dto.SessionListDTO, error) {
	sessions, err := uc.repo.ListActiveSessions(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toDTOs(ctx, sessions), nil
}

func (uc *ListSessions) Upcoming(ctx context.Context) ([]dto.SessionListDTO, error) {
	sessions, err := uc.repo.ListUpcomingSessions(ctx, uc.clk.Today())
	if err != nil {
		return nil, err
	}
	return uc.toDTOs(ctx, sessions), nil
}

// toDTOs joins display fields in; a missing candidate or interviewer leaves
// the name fields empty rather than dropping the row.
func (uc *ListSessions) toDTOs(
	ctx context.Context,
	sessions []models.InterviewSession,
) []dto.SessionListDTO {

	candidates := make(map[uint]*models.Candidate)
	interviewerNames := make(map[uint]string)

	out := make([]dto.SessionListDTO, 0, len(sessions))
	for _, s := range sessions {
		row := dto.SessionListDTO{
			SessionID:       s.ID,
			CandidateID:     s.CandidateID,
			InterviewerID:   s.InterviewerID,
			Date:            s.InterviewDate,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			Status:          s.SessionStatus,
			MeetingLink:     s.MeetingLink,
			InterviewResult: s.InterviewResult,
			Remarks:         s.Remarks,
			CreatedAt:       s.CreatedAt,
		}

		candidate := candidates[s.CandidateID]
		if candidate == nil {
			if c, err := uc.repo.GetCandidateByID(ctx, s.CandidateID); err == nil {
				candidates[s.CandidateID] = c
				candidate = c
			}
		}
		if candidate != nil {
			row.CandidateName = candidate.FullName
			row.CandidateEmail = candidate.Email
		}

		name, ok := interviewerNames[s.InterviewerID]
		if !ok {
			if interviewer, err := uc.repo.GetInterviewerByID(ctx, s.InterviewerID); err == nil {
				if user, err := uc.repo.GetUserByID(ctx, interviewer.UserID); err == nil {
					name = user.FullName
				}
			}
			interviewerNames[s.InterviewerID] = name
		}
		row.InterviewerName = name

		out = append(out, row)
	}

	return out
}
