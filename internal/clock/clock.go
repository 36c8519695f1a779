package clock

import "time"

// The scheduler runs on a single authoritative time axis: dates are
// "2006-01-02" strings and times of day are "15:04" strings. Both compare
// lexicographically in the natural order.

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Clock interface {
	Now() time.Time
	Today() string
}

type systemClock struct{}

func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Today() string {
	return time.Now().Format(DateLayout)
}

// Fixed returns a clock pinned to a single instant.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time {
	return f.t
}

func (f fixedClock) Today() string {
	return f.t.Format(DateLayout)
}

func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// MinuteOfDay converts a "15:04" string to minutes since midnight.
// Callers must validate the string first.
func MinuteOfDay(s string) int {
	t, _ := time.Parse(TimeLayout, s)
	return t.Hour()*60 + t.Minute()
}

// TimeOfDay renders minutes since midnight back to "15:04".
func TimeOfDay(minutes int) string {
	return time.Date(0, 1, 1, 0, minutes, 0, 0, time.UTC).Format(TimeLayout)
}
