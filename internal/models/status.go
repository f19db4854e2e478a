package models

// Status is the closed set of order lifecycle states.
type Status string

const (
	StatusPending             Status = "pending"
	StatusRequested           Status = "requested"
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusCompleted           Status = "completed"
	StatusDelivered           Status = "delivered"
	StatusCancelled           Status = "cancelled"
)

// transitions maps each state to the states it may move to. Delivered and
// cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:             {StatusRequested, StatusPendingConfirmation, StatusCompleted, StatusCancelled},
	StatusRequested:           {StatusPendingConfirmation, StatusCompleted, StatusDelivered, StatusCancelled},
	StatusPendingConfirmation: {StatusRequested, StatusCompleted, StatusDelivered, StatusCancelled},
	StatusCompleted:           {StatusDelivered, StatusCancelled},
	StatusDelivered:           {},
	StatusCancelled:           {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether an order in state s may move to state to.
// Re-asserting the current state is always allowed, so the complete and
// cancel endpoints stay idempotent.
func (s Status) CanTransition(to Status) bool {
	if !to.Valid() {
		return false
	}
	if s == to {
		return true
	}
	// Legacy rows created before the status column had a default.
	if s == "" {
		return true
	}
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
