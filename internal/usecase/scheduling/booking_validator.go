package scheduling

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

// BookingValidator runs the ordered invariant checks that gate session
// creation. Each check fails fast with its own error; all of them read the
// state persisted at validation time, so callers serialize writers around
// this (per-interviewer lock) and the repository re-checks on insert.
type BookingValidator struct {
	repo domain.Repository
}

func NewBookingValidator(repo domain.Repository) *BookingValidator {
	return &BookingValidator{repo: repo}
}

func (v *BookingValidator) Validate(
	ctx context.Context,
	in domain.BookingRequest,
) (*models.Candidate, *models.Interviewer, *models.AvailabilityBlock, error) {

	// 1. Candidate exists and is active
	candidate, err := v.repo.GetCandidateByID(ctx, in.CandidateID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, nil, httperr.Validation("candidate_not_found", "candidate not found")
		}
		return nil, nil, nil, err
	}
	if candidate.Status != models.CandidateActive {
		return nil, nil, nil, httperr.Validation("candidate_not_active", "candidate account is not active")
	}

	// 2. Candidate has no other active session
	busy, err := v.repo.HasActiveSessionForCandidate(ctx, in.CandidateID)
	if err != nil {
		return nil, nil, nil, err
	}
	if busy {
		return nil, nil, nil, httperr.Conflict("candidate_already_scheduled",
			"candidate already has an active interview scheduled")
	}

	// 3. Interviewer exists and is active
	interviewer, err := v.repo.GetInterviewerByID(ctx, in.InterviewerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, nil, httperr.Validation("interviewer_not_found", "interviewer not found")
		}
		return nil, nil, nil, err
	}
	if !interviewer.IsActive {
		return nil, nil, nil, httperr.Validation("interviewer_inactive", "interviewer is not active")
	}

	// 4. Block exists, belongs to the interviewer, and is active
	block, err := v.repo.GetBlockByID(ctx, in.BlockID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, nil, httperr.Validation("block_not_found", "availability block not found")
		}
		return nil, nil, nil, err
	}
	if block.InterviewerID != in.InterviewerID {
		return nil, nil, nil, httperr.Validation("block_owner_mismatch",
			"availability block does not belong to this interviewer")
	}
	if !block.IsActive {
		return nil, nil, nil, httperr.Validation("block_inactive", "availability block is not active")
	}

	// 5. Requested range lies within the block
	if block.AvailableDate != in.Date || !domain.WithinBlock(*block, in.StartTime, in.EndTime) {
		return nil, nil, nil, httperr.Validation("outside_availability",
			"selected time is outside the interviewer's availability")
	}

	// 6. No overlapping session for this interviewer on this date
	overlap, err := v.repo.HasOverlappingSession(
		ctx, in.InterviewerID, in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, nil, nil, err
	}
	if overlap {
		return nil, nil, nil, httperr.Conflict("double_booked",
			"interviewer already has a session at this time")
	}

	return candidate, interviewer, block, nil
}
