package repositories

import "github.com/moldworks/moldtrack/pkg/domain/entities"

// ShipmentRepository provides access to shipments
type ShipmentRepository interface {
	GetShipments() ([]entities.Shipment, error)
	GetShipment(id entities.ShipmentID) (*entities.Shipment, error)
	SaveShipment(shipment *entities.Shipment) error
	LoadShipments(shipments []*entities.Shipment) error
	ApproveShipment(id entities.ShipmentID) error
	DeleteShipment(id entities.ShipmentID) error
	ApprovedQuantityByOrder() (map[entities.OrderID]entities.Quantity, error)
}
