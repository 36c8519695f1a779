package scheduling

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

// ListMyAvailability returns the caller's active blocks. A panelist who has
// never submitted availability gets an interviewer record created and an
// empty list back.
type ListMyAvailability struct {
	repo domain.Repository
}

func NewListMyAvailability(repo domain.Repository) *ListMyAvailability {
	return &ListMyAvailability{repo: repo}
}

func (uc *ListMyAvailability) Execute(
	ctx context.Context,
	userID uint,
) ([]models.AvailabilityBlock, error) {

	if _, err := uc.repo.GetUserByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.NotFound("user_not_found", "user not found")
		}
		return nil, err
	}

	interviewer, err := uc.repo.GetOrCreateInterviewer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !interviewer.IsActive {
		return nil, httperr.Validation("interviewer_inactive", "interviewer account is inactive")
	}

	return uc.repo.ListBlocksByInterviewer(ctx, interviewer.ID, true)
}

// ======================================================
// Bookable slot listing
// ======================================================

type ListBookableSlotsInput struct {
	FromDate        string
	ToDate          string
	DurationMinutes int
}

type ListBookableSlots struct {
	repo domain.Repository
}

func NewListBookableSlots(repo domain.Repository) *ListBookableSlots {
	return &ListBookableSlots{repo: repo}
}

// Execute derives fixed-duration slots from every bookable block in range,
// grouped per interviewer per date. Derivation is read-time only: a new
// duration reshapes the offer without touching stored blocks.
func (uc *ListBookableSlots) Execute(
	ctx context.Context,
	in ListBookableSlotsInput,
) ([]domain.InterviewerDaySlots, error) {

	duration := in.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotMinutes
	}
	if duration < 1 {
		return nil, httperr.Validation("invalid_duration", "slot duration must be at least one minute")
	}

	blocks, err := uc.repo.FindBookableBlocks(ctx, in.FromDate, in.ToDate)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		interviewerID uint
		date          string
	}

	groups := make([]domain.InterviewerDaySlots, 0)
	index := make(map[groupKey]int)
	users := make(map[uint]*models.User)

	for _, block := range blocks {
		slots := domain.SplitBlock(block, duration)
		if len(slots) == 0 {
			continue
		}

		key := groupKey{block.InterviewerID, block.AvailableDate}
		i, ok := index[key]
		if !ok {
			interviewer, err := uc.repo.GetInterviewerByID(ctx, block.InterviewerID)
			if err != nil || !interviewer.IsActive {
				continue
			}

			user := users[interviewer.UserID]
			if user == nil {
				user, err = uc.repo.GetUserByID(ctx, interviewer.UserID)
				if err != nil {
					continue
				}
				users[interviewer.UserID] = user
			}

			groups = append(groups, domain.InterviewerDaySlots{
				InterviewerID:    block.InterviewerID,
				UserID:           interviewer.UserID,
				InterviewerName:  user.FullName,
				InterviewerEmail: user.Email,
				InterviewerRole:  user.Role,
				Date:             block.AvailableDate,
				Notes:            block.Notes,
			})
			i = len(groups) - 1
			index[key] = i
		}

		groups[i].Slots = append(groups[i].Slots, slots...)
	}

	return groups, nil
}
