package events

import (
	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

const (
	ShiftRecordedEvent = "shift.recorded"

	OrderDoneEvent    = "order.done"
	OrderDeletedEvent = "order.deleted"

	ShipmentsApprovedEvent = "shipments.approved"
	ApprovalRejectedEvent  = "approval.rejected"
)

type ShiftRecorded struct {
	Record entities.ShiftRecord `json:"record"`
}

type OrderDone struct {
	Order entities.Order `json:"order"`
}

type OrderDeleted struct {
	OrderID entities.OrderID `json:"order_id"`
}

type ShipmentsApproved struct {
	ShipmentIDs []entities.ShipmentID                  `json:"shipment_ids"`
	Ceilings    map[entities.OrderID]entities.Quantity `json:"ceilings"`
}

type ApprovalRejected struct {
	ShipmentIDs []entities.ShipmentID                  `json:"shipment_ids"`
	Ceilings    map[entities.OrderID]entities.Quantity `json:"ceilings"`
	Reason      string                                 `json:"reason"`
}

func NewShiftRecordedEvent(record entities.ShiftRecord) Event {
	return NewEvent(ShiftRecordedEvent, string(record.MachineID), ShiftRecorded{Record: record})
}

func NewOrderDoneEvent(order entities.Order) Event {
	return NewEvent(OrderDoneEvent, string(order.ID), OrderDone{Order: order})
}

func NewOrderDeletedEvent(orderID entities.OrderID) Event {
	return NewEvent(OrderDeletedEvent, string(orderID), OrderDeleted{OrderID: orderID})
}

func NewShipmentsApprovedEvent(
	shipmentIDs []entities.ShipmentID,
	ceilings map[entities.OrderID]entities.Quantity,
) Event {
	return NewEvent(ShipmentsApprovedEvent, "approvals", ShipmentsApproved{
		ShipmentIDs: shipmentIDs,
		Ceilings:    ceilings,
	})
}

func NewApprovalRejectedEvent(
	shipmentIDs []entities.ShipmentID,
	ceilings map[entities.OrderID]entities.Quantity,
	reason string,
) Event {
	return NewEvent(ApprovalRejectedEvent, "approvals", ApprovalRejected{
		ShipmentIDs: shipmentIDs,
		Ceilings:    ceilings,
		Reason:      reason,
	})
}
