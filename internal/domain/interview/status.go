package interview

// ===============================
// Session Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "SCHEDULED"
	StatusLinkAdded   Status = "LINK_ADDED"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
	StatusRescheduled Status = "RESCHEDULED"
	StatusNoShow      Status = "NO_SHOW"
)

// transitions is the full lifecycle table. Statuses absent as keys are
// terminal. LINK_ADDED → LINK_ADDED keeps re-linking idempotent.
var transitions = map[Status]map[Status]bool{
	StatusScheduled: {
		StatusLinkAdded:   true,
		StatusCompleted:   true,
		StatusCancelled:   true,
		StatusRescheduled: true,
		StatusNoShow:      true,
	},
	StatusLinkAdded: {
		StatusLinkAdded:   true,
		StatusCompleted:   true,
		StatusCancelled:   true,
		StatusRescheduled: true,
		StatusNoShow:      true,
	},
}

func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// IsOpen reports whether a status still counts against the candidate's
// single-active-session rule and the interviewer's calendar.
func IsOpen(s Status) bool {
	return s == StatusScheduled || s == StatusLinkAdded
}

// ===============================
// Interview Result
// ===============================

type Result string

const (
	ResultSelected    Result = "SELECTED"
	ResultRejected    Result = "REJECTED"
	ResultWaitingList Result = "WAITING_LIST"
)

func ValidResult(r Result) bool {
	switch r {
	case ResultSelected, ResultRejected, ResultWaitingList:
		return true
	}
	return false
}
