package scheduling

import (
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/audit"
	"github.com/LakshmiKarthikaN/kalvitrack-scheduler/internal/notify"
)

// Narrow views of the async dispatchers so use-case tests can stub them.

type auditTrail interface {
	Dispatch(ev audit.Event)
}

type notifier interface {
	Dispatch(ev notify.Event)
}
