package memory

import (
	"fmt"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
	"github.com/moldworks/moldtrack/pkg/domain/repositories"
)

// ShipmentRepository provides in-memory shipment storage
type ShipmentRepository struct {
	shipments map[entities.ShipmentID]entities.Shipment
	seq       []entities.ShipmentID
}

// NewShipmentRepository creates a new in-memory shipment repository
func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{
		shipments: make(map[entities.ShipmentID]entities.Shipment),
	}
}

// Verify interface compliance
var _ repositories.ShipmentRepository = (*ShipmentRepository)(nil)

// SaveShipment stores a shipment, replacing any shipment with the same id
func (r *ShipmentRepository) SaveShipment(shipment *entities.Shipment) error {
	if _, exists := r.shipments[shipment.ID]; !exists {
		r.seq = append(r.seq, shipment.ID)
	}
	r.shipments[shipment.ID] = *shipment
	return nil
}

// LoadShipments loads shipments into the repository
func (r *ShipmentRepository) LoadShipments(shipments []*entities.Shipment) error {
	for _, shipment := range shipments {
		if err := r.SaveShipment(shipment); err != nil {
			return err
		}
	}
	return nil
}

// GetShipments returns every stored shipment in insertion order
func (r *ShipmentRepository) GetShipments() ([]entities.Shipment, error) {
	shipments := make([]entities.Shipment, 0, len(r.shipments))
	for _, id := range r.seq {
		if shipment, exists := r.shipments[id]; exists {
			shipments = append(shipments, shipment)
		}
	}
	return shipments, nil
}

// GetShipment returns the shipment with the given id
func (r *ShipmentRepository) GetShipment(id entities.ShipmentID) (*entities.Shipment, error) {
	shipment, exists := r.shipments[id]
	if !exists {
		return nil, fmt.Errorf("shipment not found: %s", id)
	}
	return &shipment, nil
}

// ApproveShipment flips a pending shipment to approved
func (r *ShipmentRepository) ApproveShipment(id entities.ShipmentID) error {
	shipment, exists := r.shipments[id]
	if !exists {
		return fmt.Errorf("shipment not found: %s", id)
	}
	if err := shipment.Approve(); err != nil {
		return err
	}
	r.shipments[id] = shipment
	return nil
}

// DeleteShipment removes a shipment from the store; deletion is permitted
// in either approval state
func (r *ShipmentRepository) DeleteShipment(id entities.ShipmentID) error {
	if _, exists := r.shipments[id]; !exists {
		return fmt.Errorf("shipment not found: %s", id)
	}
	delete(r.shipments, id)
	return nil
}

// ApprovedQuantityByOrder sums approved shipment quantities per order
func (r *ShipmentRepository) ApprovedQuantityByOrder() (map[entities.OrderID]entities.Quantity, error) {
	approved := make(map[entities.OrderID]entities.Quantity)
	for _, shipment := range r.shipments {
		if shipment.Status == entities.ShipmentApproved {
			approved[shipment.OrderID] += shipment.Quantity
		}
	}
	return approved, nil
}
