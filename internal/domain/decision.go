package domain

// Status is the terminal outcome of an admission decision.
type Status string

const (
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Decision pairs an order with the outcome it received.
type Decision struct {
	Order  *Order
	Status Status
}

func (d Decision) Accepted() bool { return d.Status == StatusAccepted }
