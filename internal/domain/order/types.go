package order

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCanceled   Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelivering, StatusDelivered, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

// CanTransitionTo encodes the delivery lifecycle. Cancellation is allowed
// until the order is out for delivery.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCanceled
	case StatusConfirmed:
		return next == StatusDelivering || next == StatusCanceled
	case StatusDelivering:
		return next == StatusDelivered
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
