package production

import (
	"sort"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

// ComputeFIFOAssignments distributes each mold's net unshipped stock
// across the orders referencing that mold, oldest commitment first, so a
// newer order can never pre-empt an older order's claim on unclaimed
// goods.
//
// Commitment order is (start timestamp compared as a string, order id);
// empty start timestamps sort first and the unique order id breaks ties.
// Orders with a blank mold id are excluded from allocation and reported
// in Unassigned. The function is pure: identical snapshots produce
// identical output and nothing is mutated.
//
// Conservation holds exactly per mold: the assigned quantities plus the
// leftover Remaining equal the net stock.
func ComputeFIFOAssignments(
	orders []entities.Order,
	producedByMold map[entities.MoldID]entities.Quantity,
	approvedByOrder map[entities.OrderID]entities.Quantity,
) (*AllocationResult, error) {
	result := &AllocationResult{
		PerOrder: make(map[entities.OrderID]OrderAssignment, len(orders)),
		PerMold:  make(map[entities.MoldID]MoldPool),
	}

	seen := make(map[entities.OrderID]struct{}, len(orders))
	byMold := make(map[entities.MoldID][]entities.Order)
	for _, order := range orders {
		if _, dup := seen[order.ID]; dup {
			return nil, integrityErrorf("duplicate order id %q in snapshot", order.ID)
		}
		seen[order.ID] = struct{}{}

		if string(order.MoldID) == "" {
			result.Unassigned = append(result.Unassigned, order.ID)
			continue
		}
		byMold[order.MoldID] = append(byMold[order.MoldID], order)
	}
	sort.Slice(result.Unassigned, func(i, j int) bool {
		return result.Unassigned[i] < result.Unassigned[j]
	})

	for moldID, moldOrders := range byMold {
		sort.Slice(moldOrders, func(i, j int) bool {
			if moldOrders[i].StartAt != moldOrders[j].StartAt {
				return moldOrders[i].StartAt < moldOrders[j].StartAt
			}
			return moldOrders[i].ID < moldOrders[j].ID
		})

		gross := coerceQty(producedByMold[moldID])
		var shippedTotal entities.Quantity
		for _, order := range moldOrders {
			shippedTotal += coerceQty(approvedByOrder[order.ID])
		}

		net := gross - shippedTotal
		if net < 0 {
			net = 0
		}

		remaining := net
		for _, order := range moldOrders {
			shipped := coerceQty(approvedByOrder[order.ID])
			target := coerceQty(order.TargetQty)

			need := target - shipped
			if need < 0 {
				need = 0
			}
			assigned := need
			if assigned > remaining {
				assigned = remaining
			}
			remaining -= assigned

			progress := shipped + assigned
			if progress > target {
				progress = target
			}
			pending := target - progress
			if pending < 0 {
				pending = 0
			}

			result.PerOrder[order.ID] = OrderAssignment{
				OrderID:  order.ID,
				MoldID:   moldID,
				Target:   target,
				Shipped:  shipped,
				Assigned: assigned,
				Progress: progress,
				Pending:  pending,
			}
		}

		result.PerMold[moldID] = MoldPool{
			MoldID:    moldID,
			Gross:     gross,
			Shipped:   shippedTotal,
			Net:       net,
			Remaining: remaining,
		}
	}

	return result, nil
}
