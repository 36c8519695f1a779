package scheduling

import (
	"context"

	"gorm.io/gorm"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/audit"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/clock"
	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

// ownedUnbookedBlock resolves a block for its owning interviewer and
// rejects mutation of booked blocks.
func ownedUnbookedBlock(
	ctx context.Context,
	repo domain.Repository,
	blockID uint,
	userID uint,
) (*models.AvailabilityBlock, error) {

	block, err := repo.GetBlockByID(ctx, blockID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.NotFound("block_not_found", "availability block not found")
		}
		return nil, err
	}

	interviewer, err := repo.FindInterviewerByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.NotFound("interviewer_not_found", "interviewer profile not found")
		}
		return nil, err
	}

	if block.InterviewerID != interviewer.ID {
		return nil, httperr.NotFound("block_not_found",
			"availability block not found for this interviewer")
	}
	if block.IsBooked {
		return nil, httperr.Conflict("block_booked", "cannot modify a booked availability block")
	}

	return block, nil
}

// ======================================================
// Update block
// ======================================================

type UpdateBlock struct {
	repo  domain.Repository
	audit auditTrail
}

func NewUpdateBlock(repo domain.Repository, auditTrail auditTrail) *UpdateBlock {
	return &UpdateBlock{repo: repo, audit: auditTrail}
}

func (uc *UpdateBlock) Execute(
	ctx context.Context,
	userID uint,
	blockID uint,
	in TimeBlockInput,
) (*models.AvailabilityBlock, error) {

	if !clock.ValidTime(in.StartTime) || !clock.ValidTime(in.EndTime) {
		return nil, httperr.Validation("invalid_time", "times must be HH:MM")
	}
	if in.StartTime >= in.EndTime {
		return nil, httperr.Validation("invalid_time_range", "start time must be before end time")
	}

	block, err := ownedUnbookedBlock(ctx, uc.repo, blockID, userID)
	if err != nil {
		return nil, err
	}

	block.StartTime = in.StartTime
	block.EndTime = in.EndTime
	block.Notes = in.Notes

	if err := uc.repo.UpdateBlock(ctx, block); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "availability_updated",
		Entity:   "availability_block",
		EntityID: &block.ID,
	})

	return block, nil
}

// ======================================================
// Delete block
// ======================================================

type DeleteBlock struct {
	repo  domain.Repository
	audit auditTrail
}

func NewDeleteBlock(repo domain.Repository, auditTrail auditTrail) *DeleteBlock {
	return &DeleteBlock{repo: repo, audit: auditTrail}
}

func (uc *DeleteBlock) Execute(
	ctx context.Context,
	userID uint,
	blockID uint,
) error {

	block, err := ownedUnbookedBlock(ctx, uc.repo, blockID, userID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBlock(ctx, block); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "availability_deleted",
		Entity:   "availability_block",
		EntityID: &block.ID,
	})

	return nil
}
