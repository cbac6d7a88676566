package model

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// validTransitions is the authoritative transition table. Completed and
// cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]

	return ok
}

func (s Status) IsTerminal() bool {
	targets, ok := validTransitions[s]

	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition table allows moving from s
// to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

// RequiresReason reports whether entering this status needs an explanation
// from the owner.
func (s Status) RequiresReason() bool {
	return s == StatusCancelled || s == StatusCompleted
}
