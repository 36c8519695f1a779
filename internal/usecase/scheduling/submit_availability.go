package scheduling

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/audit"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/clock"
	domain "github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/domain/interview"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/httperr"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type TimeBlockInput struct {
	StartTime string
	EndTime   string
	Notes     string
}

type SubmitAvailabilityInput struct {
	UserID              uint
	SlotDurationMinutes int
	Days                map[string][]TimeBlockInput
}

// ======================================================
// USE CASE
// ======================================================

// SubmitAvailability replaces the caller's declared availability wholesale
// per date: old blocks for each submitted date are deleted, never merged.
type SubmitAvailability struct {
	repo  domain.Repository
	audit auditTrail
	clk   clock.Clock
}

func NewSubmitAvailability(
	repo domain.Repository,
	auditTrail auditTrail,
	clk clock.Clock,
) *SubmitAvailability {
	return &SubmitAvailability{
		repo:  repo,
		audit: auditTrail,
		clk:   clk,
	}
}

func (uc *SubmitAvailability) Execute(
	ctx context.Context,
	in SubmitAvailabilityInput,
) ([]models.AvailabilityBlock, error) {

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.NotFound("user_not_found", "user not found")
		}
		return nil, err
	}

	if !user.CanSubmitAvailability() {
		return nil, httperr.Validation("role_not_allowed",
			"only interview panelists and faculty members can set availability")
	}
	if user.Status != models.UserActive {
		return nil, httperr.Validation("user_inactive", "user account is not active")
	}

	interviewer, err := uc.repo.GetOrCreateInterviewer(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !interviewer.IsActive {
		return nil, httperr.Validation("interviewer_inactive", "interviewer account is inactive")
	}

	if len(in.Days) == 0 {
		return nil, httperr.Validation("no_time_slots", "no availability submitted")
	}

	slotDuration := in.SlotDurationMinutes
	if slotDuration == 0 {
		slotDuration = domain.DefaultSlotMinutes
	}
	if slotDuration < 1 {
		return nil, httperr.Validation("invalid_slot_duration", "slot duration must be at least one minute")
	}

	dates := make([]string, 0, len(in.Days))
	for date := range in.Days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	today := uc.clk.Today()

	days := make([]domain.DayBlocks, 0, len(dates))
	for _, date := range dates {
		if !clock.ValidDate(date) {
			return nil, httperr.Validation("invalid_date",
				fmt.Sprintf("invalid date: %s", date))
		}
		if date < today {
			return nil, httperr.Validation("past_date",
				fmt.Sprintf("cannot set availability for past dates: %s", date))
		}

		blocks := make([]models.AvailabilityBlock, 0, len(in.Days[date]))
		for _, tb := range in.Days[date] {
			if !clock.ValidTime(tb.StartTime) || !clock.ValidTime(tb.EndTime) {
				return nil, httperr.Validation("invalid_time",
					fmt.Sprintf("invalid time block for %s: times must be HH:MM", date))
			}
			if tb.StartTime >= tb.EndTime {
				return nil, httperr.Validation("invalid_time_range",
					fmt.Sprintf("invalid time block for %s: start time (%s) must be before end time (%s)",
						date, tb.StartTime, tb.EndTime))
			}

			blocks = append(blocks, models.AvailabilityBlock{
				StartTime:               tb.StartTime,
				EndTime:                 tb.EndTime,
				Notes:                   tb.Notes,
				SlotDurationMinutes:     slotDuration,
				MaxConcurrentInterviews: 1,
			})
		}

		days = append(days, domain.DayBlocks{Date: date, Blocks: blocks})
	}

	saved, err := uc.repo.ReplaceAvailability(ctx, interviewer.ID, days)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "availability_replaced",
		Entity:   "availability_block",
		Metadata: map[string]int{"blocks": len(saved)},
	})

	return saved, nil
}
