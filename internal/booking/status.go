package booking

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ParseStatus converts a raw string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted:
		return true
	case StatusPending, StatusConfirmed:
		return false
	}
	return false
}

// CanTransition reports whether a booking may move from s to next.
// Pending may be confirmed; any non-terminal state may be cancelled or
// completed; cancelled and completed accept nothing.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled || next == StatusCompleted
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted
	case StatusCancelled, StatusCompleted:
		return false
	}
	return false
}

// ActiveStatuses are the states that participate in conflict detection.
// Cancelled and completed bookings never re-enter this set.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// IsActive reports whether the booking still occupies its time slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}
