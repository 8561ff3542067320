package sitterbooking

type Status string

const (
	StatusPending           Status = "PENDING"
	StatusConfirmed         Status = "CONFIRMED"
	StatusInProgress        Status = "IN_PROGRESS"
	StatusRequestToComplete Status = "REQUEST_TO_COMPLETE"
	StatusCompleted         Status = "COMPLETED"
	StatusCancelled         Status = "CANCELLED"
	StatusExpired           Status = "EXPIRED"
	StatusLate              Status = "LATE"
)

var transitions = map[Status][]Status{
	StatusPending:           {StatusConfirmed, StatusCancelled, StatusExpired},
	StatusConfirmed:         {StatusInProgress, StatusCancelled, StatusLate},
	StatusLate:              {StatusInProgress, StatusCancelled},
	StatusInProgress:        {StatusRequestToComplete},
	StatusRequestToComplete: {StatusCompleted},
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok || s == StatusCompleted || s == StatusCancelled || s == StatusExpired
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ActiveStatuses block overlapping bookings for the same sitter.
func ActiveStatuses() []Status {
	return []Status{StatusConfirmed, StatusInProgress, StatusRequestToComplete, StatusLate}
}

func (s Status) IsActive() bool {
	for _, a := range ActiveStatuses() {
		if a == s {
			return true
		}
	}
	return false
}

// StartableStatuses may move to IN_PROGRESS.
func StartableStatuses() []Status {
	return []Status{StatusConfirmed, StatusLate}
}

// CancelPolicy decides which statuses a party may cancel from.
type CancelPolicy struct {
	AllowConfirmed bool
}

func (p CancelPolicy) CancelableStatuses() []Status {
	if p.AllowConfirmed {
		return []Status{StatusPending, StatusConfirmed, StatusLate}
	}
	return []Status{StatusPending}
}

func (p CancelPolicy) CanCancel(s Status) bool {
	for _, c := range p.CancelableStatuses() {
		if c == s {
			return true
		}
	}
	return false
}

func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
