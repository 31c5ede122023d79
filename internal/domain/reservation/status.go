package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
)

// InitialStatus is the status every new reservation starts in.
func InitialStatus() Status {
	return StatusActive
}
