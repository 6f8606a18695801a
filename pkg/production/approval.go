package production

import (
	"fmt"
	"sort"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

// CheckApproval decides whether a batch of pending shipments may be
// approved. The ceiling for each order is its FIFO-assigned quantity,
// re-derived from the supplied snapshot; a previously displayed value is
// never trusted because the ceiling depends on shared mold-wide state.
//
// Candidates are grouped by order and the batch is all-or-nothing: one
// group exceeding its ceiling, or one candidate that is not pending,
// rejects every candidate. A candidate listed more than once counts once;
// its quantity is never double-summed and the decision's id lists carry it
// once, so the caller commits each flag flip exactly once. The decision
// always carries the computed ceilings so the caller can build a message
// or adjust quantities.
//
// The check is pure; committing the approved flag flips is the caller's
// responsibility, and the caller must serialize commits per mold to avoid
// two stale-ceiling approvals jointly over-approving.
func CheckApproval(candidateIDs []entities.ShipmentID, snapshot ApprovalSnapshot) (*ApprovalDecision, error) {
	shipmentsByID := make(map[entities.ShipmentID]entities.Shipment, len(snapshot.Shipments))
	approvedByOrder := make(map[entities.OrderID]entities.Quantity)
	for _, shipment := range snapshot.Shipments {
		if _, dup := shipmentsByID[shipment.ID]; dup {
			return nil, integrityErrorf("duplicate shipment id %q in snapshot", shipment.ID)
		}
		shipmentsByID[shipment.ID] = shipment
		if shipment.Status == entities.ShipmentApproved {
			approvedByOrder[shipment.OrderID] += coerceQty(shipment.Quantity)
		}
	}

	allocation, err := ComputeFIFOAssignments(snapshot.Orders, snapshot.ProducedByMold, approvedByOrder)
	if err != nil {
		return nil, err
	}

	decision := &ApprovalDecision{
		Ceilings: make(map[entities.OrderID]entities.Quantity),
	}

	// Requested quantity per order across the batch. Repeated candidate
	// ids collapse to a single entry.
	requested := make(map[entities.OrderID]entities.Quantity)
	candidateSeen := make(map[entities.ShipmentID]struct{}, len(candidateIDs))
	candidates := make([]entities.ShipmentID, 0, len(candidateIDs))
	var notPending []entities.ShipmentID
	for _, id := range candidateIDs {
		if _, dup := candidateSeen[id]; dup {
			continue
		}
		candidateSeen[id] = struct{}{}
		candidates = append(candidates, id)

		shipment, ok := shipmentsByID[id]
		if !ok {
			return nil, integrityErrorf("candidate shipment %q not in snapshot", id)
		}
		if shipment.Status != entities.ShipmentPending {
			notPending = append(notPending, id)
			continue
		}
		requested[shipment.OrderID] += coerceQty(shipment.Quantity)
	}

	for orderID := range requested {
		decision.Ceilings[orderID] = allocation.PerOrder[orderID].Assigned
	}

	if len(notPending) > 0 {
		decision.RejectedIDs = candidates
		decision.Reason = fmt.Sprintf("shipment %s is not pending; approval is the only defined transition", notPending[0])
		return decision, nil
	}

	var overCeiling []entities.OrderID
	for orderID, qty := range requested {
		if qty > decision.Ceilings[orderID] {
			overCeiling = append(overCeiling, orderID)
		}
	}
	if len(overCeiling) > 0 {
		sort.Slice(overCeiling, func(i, j int) bool { return overCeiling[i] < overCeiling[j] })
		worst := overCeiling[0]
		decision.RejectedIDs = candidates
		decision.Reason = fmt.Sprintf(
			"requested %d exceeds the assigned ceiling %d for order %s",
			requested[worst], decision.Ceilings[worst], worst,
		)
		return decision, nil
	}

	decision.Approved = true
	decision.ApprovedIDs = candidates
	return decision, nil
}
