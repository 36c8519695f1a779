package interview

import (
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/clock"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/models"
)

const DefaultSlotMinutes = 60

// Slot is one fixed-duration bookable window derived from a block. Slots
// are never persisted; changing the requested duration changes the offer
// without touching stored blocks.
type Slot struct {
	BlockID         uint   `json:"availability_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// SplitBlock partitions a block into consecutive slots of durationMinutes.
// The last slot may end exactly at the block end; a shorter trailing
// remainder is dropped. A duration longer than the block yields no slots.
func SplitBlock(block models.AvailabilityBlock, durationMinutes int) []Slot {
	if durationMinutes <= 0 {
		return nil
	}

	start := clock.MinuteOfDay(block.StartTime)
	end := clock.MinuteOfDay(block.EndTime)

	var slots []Slot
	for cur := start; cur+durationMinutes <= end; cur += durationMinutes {
		slots = append(slots, Slot{
			BlockID:         block.ID,
			StartTime:       clock.TimeOfDay(cur),
			EndTime:         clock.TimeOfDay(cur + durationMinutes),
			DurationMinutes: durationMinutes,
		})
	}

	return slots
}

// RangesOverlap applies the half-open interval test: [a,b) and [c,d)
// overlap iff a < d and c < b. Zero-padded HH:MM strings order correctly.
func RangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// WithinBlock reports whether [start,end) lies inside the block's window.
func WithinBlock(block models.AvailabilityBlock, start, end string) bool {
	return start >= block.StartTime && end <= block.EndTime
}

// ===============================
// Slot listing shapes
// ===============================

// InterviewerDaySlots groups the derived slots for one interviewer on one
// date. An explicit struct, not a composite-keyed map, so the response
// shape is checked at compile time.
type InterviewerDaySlots struct {
	InterviewerID    uint   `json:"interviewer_id"`
	UserID           uint   `json:"user_id"`
	InterviewerName  string `json:"interviewer_name"`
	InterviewerEmail string `json:"interviewer_email"`
	InterviewerRole  string `json:"interviewer_role"`
	Date             string `json:"date"`
	Notes            string `json:"notes,omitempty"`
	Slots            []Slot `json:"slots"`
}
