package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// ShipmentID represents a unique shipment identifier
type ShipmentID string

// ApprovalStatus represents the approval state of a shipment
type ApprovalStatus int

const (
	ShipmentPending ApprovalStatus = iota
	ShipmentApproved
)

// String method for ApprovalStatus enum
func (s ApprovalStatus) String() string {
	switch s {
	case ShipmentPending:
		return "pending"
	case ShipmentApproved:
		return "approved"
	default:
		return "Unknown"
	}
}

// Shipment represents a quantity claimed against an order. Shipments are
// created pending and may only transition to approved; there is no
// transition back to pending. Deletion is permitted in either state and is
// an external store concern.
type Shipment struct {
	ID          ShipmentID
	OrderID     OrderID
	ShipDate    string
	Quantity    Quantity
	Destination string
	Note        string
	Status      ApprovalStatus
}

// NewShipment creates a validated pending Shipment. An empty id is minted.
func NewShipment(id ShipmentID, orderID OrderID, shipDate string, quantity Quantity, destination, note string) (*Shipment, error) {
	if string(orderID) == "" {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}
	if string(id) == "" {
		id = ShipmentID(uuid.NewString())
	}

	return &Shipment{
		ID:          id,
		OrderID:     orderID,
		ShipDate:    shipDate,
		Quantity:    quantity,
		Destination: destination,
		Note:        note,
		Status:      ShipmentPending,
	}, nil
}

// Approve transitions the shipment from pending to approved
func (s *Shipment) Approve() error {
	if s.Status == ShipmentApproved {
		return fmt.Errorf("shipment %s is already approved", s.ID)
	}
	s.Status = ShipmentApproved
	return nil
}
