package checkout

type Status string

const (
	StatusIdle          Status = "IDLE"
	StatusSubmitting    Status = "SUBMITTING"
	StatusDispatchedUPI Status = "DISPATCHED_UPI"
	StatusDispatchedCOD Status = "DISPATCHED_COD"
)

// The dispatched states are optimistic: for UPI the payment link was handed to
// the environment and never verified, so neither state implies a confirmed
// payment.
func (s Status) IsTerminal() bool {
	return s == StatusDispatchedUPI || s == StatusDispatchedCOD
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

func CanTransitionTo(from, to Status) bool {
	switch from {
	case StatusIdle:
		return to == StatusSubmitting
	case StatusSubmitting:
		// Validation or dispatch failure returns the machine to idle
		return to == StatusIdle || to == StatusDispatchedUPI || to == StatusDispatchedCOD
	default:
		return false
	}
}
