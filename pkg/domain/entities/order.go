package entities

import (
	"fmt"
)

// OrderID represents a unique production order identifier
type OrderID string

// OrderState represents the planning state of an order
type OrderState int

const (
	OrderPlanned OrderState = iota
	OrderDone
)

// String method for OrderState enum
func (s OrderState) String() string {
	switch s {
	case OrderPlanned:
		return "plan"
	case OrderDone:
		return "done"
	default:
		return "Unknown"
	}
}

// Order represents a production order competing for a mold's output.
// StartAt and EstimatedEnd are timestamps carried as strings; FIFO
// commitment order compares StartAt lexicographically with empty values
// sorting first.
type Order struct {
	ID           OrderID
	PartID       PartID
	MoldID       MoldID
	MachineID    MachineID
	TargetQty    Quantity
	StartAt      string
	EstimatedEnd string
	SetupMinutes float64
	State        OrderState

	// Optional recipe overrides; zero means "use the mold recipe value".
	CycleOverride  float64
	CavityOverride int
}

// NewOrder creates a validated Order
func NewOrder(id OrderID, partID PartID, moldID MoldID, machineID MachineID, targetQty Quantity, startAt string) (*Order, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if targetQty < 0 {
		return nil, fmt.Errorf("target quantity cannot be negative, got %d", targetQty)
	}

	return &Order{
		ID:        id,
		PartID:    partID,
		MoldID:    moldID,
		MachineID: machineID,
		TargetQty: targetQty,
		StartAt:   startAt,
		State:     OrderPlanned,
	}, nil
}

// MarkDone transitions the order from plan to done
func (o *Order) MarkDone() error {
	if o.State == OrderDone {
		return fmt.Errorf("order %s is already done", o.ID)
	}
	o.State = OrderDone
	return nil
}
