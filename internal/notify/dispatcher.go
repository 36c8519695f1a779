package notify

import "log"

// Event describes a scheduling outcome worth telling the participants
// about. Delivery is best-effort: a failed or dropped notification never
// fails the operation that produced it.
type Event struct {
	Type string

	SessionID     uint
	InterviewDate string
	StartTime     string
	EndTime       string
	MeetingLink   string

	CandidateName  string
	CandidateEmail string

	InterviewerName  string
	InterviewerEmail string
}

const (
	EventScheduled = "interview_scheduled"
	EventCancelled = "interview_cancelled"
	EventLinkAdded = "meeting_link_added"
)

// Sink is the delivery boundary. The default sink logs; a mail or chat
// integration plugs in here without touching the scheduling core.
type Sink interface {
	Send(ev Event) error
}

type LogSink struct{}

func (LogSink) Send(ev Event) error {
	log.Printf("notify: %s session=%d %s %s-%s candidate=%s interviewer=%s",
		ev.Type, ev.SessionID, ev.InterviewDate, ev.StartTime, ev.EndTime,
		ev.CandidateEmail, ev.InterviewerEmail)
	return nil
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 100
	}

	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, queueSize),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Send(ev); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop rather than block the scheduling path
		log.Println("notify queue full, dropping event")
	}
}
