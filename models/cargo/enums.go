package cargo

// Status is the lifecycle state of a cargo booking.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPickedUp       Status = "picked-up"
	StatusInTransit      Status = "in-transit"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
	StatusReturned       Status = "returned"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPickedUp, StatusInTransit, StatusOutForDelivery,
		StatusDelivered, StatusReturned, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the booking reached a final state.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusReturned || s == StatusCancelled
}

// AllStatuses returns every valid booking status.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusPickedUp,
		StatusInTransit,
		StatusOutForDelivery,
		StatusDelivered,
		StatusReturned,
		StatusCancelled,
	}
}
