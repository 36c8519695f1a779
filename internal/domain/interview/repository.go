package interview

import (
	"context"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

// BookingRequest is the proposed booking the validator decides on.
type BookingRequest struct {
	CandidateID   uint
	InterviewerID uint
	BlockID       uint
	Date          string
	StartTime     string
	EndTime       string
	Remarks       string
}

// DayBlocks carries one date's full desired block set for a replace.
type DayBlocks struct {
	Date   string
	Blocks []models.AvailabilityBlock
}

type Repository interface {
	// -------- Identity / candidates --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetCandidateByID(
		ctx context.Context,
		id uint,
	) (*models.Candidate, error)

	// -------- Interviewer --------
	FindInterviewerByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Interviewer, error)

	GetOrCreateInterviewer(
		ctx context.Context,
		userID uint,
	) (*models.Interviewer, error)

	GetInterviewerByID(
		ctx context.Context,
		id uint,
	) (*models.Interviewer, error)

	// -------- Availability blocks --------

	// ReplaceAvailability deletes every existing block for each submitted
	// (interviewer, date) and inserts the new set, all in one transaction.
	ReplaceAvailability(
		ctx context.Context,
		interviewerID uint,
		days []DayBlocks,
	) ([]models.AvailabilityBlock, error)

	GetBlockByID(
		ctx context.Context,
		id uint,
	) (*models.AvailabilityBlock, error)

	UpdateBlock(
		ctx context.Context,
		block *models.AvailabilityBlock,
	) error

	DeleteBlock(
		ctx context.Context,
		block *models.AvailabilityBlock,
	) error

	ListBlocksByInterviewer(
		ctx context.Context,
		interviewerID uint,
		activeOnly bool,
	) ([]models.AvailabilityBlock, error)

	FindBookableBlocks(
		ctx context.Context,
		fromDate string,
		toDate string,
	) ([]models.AvailabilityBlock, error)

	// -------- Sessions --------
	HasActiveSessionForCandidate(
		ctx context.Context,
		candidateID uint,
	) (bool, error)

	HasOverlappingSession(
		ctx context.Context,
		interviewerID uint,
		date string,
		startTime string,
		endTime string,
	) (bool, error)

	// CreateSessionIfFree inserts the session inside one transaction,
	// re-running the overlap and single-active-candidate checks under row
	// locks, and marks the source block booked.
	CreateSessionIfFree(
		ctx context.Context,
		session *models.InterviewSession,
	) error

	GetSessionByID(
		ctx context.Context,
		id uint,
	) (*models.InterviewSession, error)

	UpdateSession(
		ctx context.Context,
		session *models.InterviewSession,
	) error

	// CancelSession persists the cancelled session and releases the source
	// block's booked flag when no other open session references it, in one
	// transaction.
	CancelSession(
		ctx context.Context,
		session *models.InterviewSession,
	) error

	// -------- Session queries --------
	ListSessionsByCandidate(
		ctx context.Context,
		candidateID uint,
	) ([]models.InterviewSession, error)

	ListSessionsByInterviewer(
		ctx context.Context,
		interviewerID uint,
	) ([]models.InterviewSession, error)

	ListActiveSessions(
		ctx context.Context,
	) ([]models.InterviewSession, error)

	ListUpcomingSessions(
		ctx context.Context,
		today string,
	) ([]models.InterviewSession, error)
}
