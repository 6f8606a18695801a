package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
	"github.com/moldworks/moldtrack/pkg/domain/repositories"
	"github.com/moldworks/moldtrack/pkg/infrastructure/events"
	"github.com/moldworks/moldtrack/pkg/production"
)

// ShiftEntry holds one raw shift entry as submitted by an operator
type ShiftEntry struct {
	MachineID       entities.MachineID
	Date            string
	Shift           int
	Operator        string
	MoldID          entities.MoldID
	PartID          entities.PartID
	CycleSeconds    float64
	Hours           float64
	DowntimeMinutes float64
	TotalProduced   entities.Quantity
	Scrap           entities.Quantity
}

// PlanningService wires the snapshot stores to the computation layer. It
// owns the read-modify-write atomicity the pure functions cannot: all
// approval commits are serialized behind one mutex so two concurrent
// approvals can never both read a stale ceiling and jointly over-approve.
type PlanningService struct {
	shifts    repositories.ShiftRecordRepository
	orders    repositories.OrderRepository
	shipments repositories.ShipmentRepository
	catalog   repositories.CatalogRepository
	events    events.EventStore

	approvalMutex sync.Mutex
}

// NewPlanningService creates a planning service over the given stores.
// The event store may be nil when no audit trail is wanted.
func NewPlanningService(
	shifts repositories.ShiftRecordRepository,
	orders repositories.OrderRepository,
	shipments repositories.ShipmentRepository,
	catalog repositories.CatalogRepository,
	eventStore events.EventStore,
) *PlanningService {
	return &PlanningService{
		shifts:    shifts,
		orders:    orders,
		shipments: shipments,
		catalog:   catalog,
		events:    eventStore,
	}
}

// RecordShift derives the metrics for a raw shift entry and appends the
// resulting record to the shift store. A blank cycle time falls back to
// the mold recipe's cycle when one is known.
func (s *PlanningService) RecordShift(ctx context.Context, entry ShiftEntry) (*entities.ShiftRecord, error) {
	record, err := entities.NewShiftRecord(entry.MachineID, entry.Date, entry.Shift, entry.Operator, entry.MoldID, entry.PartID)
	if err != nil {
		return nil, fmt.Errorf("invalid shift entry: %w", err)
	}

	cycle := entry.CycleSeconds
	if cycle <= 0 && s.catalog != nil {
		if recipe, recipeErr := s.catalog.GetRecipe(entry.MoldID); recipeErr == nil {
			cycle = recipe.CycleSeconds
		}
	}

	record.CycleSeconds = cycle
	record.Hours = entry.Hours
	record.DowntimeMinutes = entry.DowntimeMinutes
	record.TotalProduced = entry.TotalProduced
	record.Scrap = entry.Scrap

	metrics := production.ComputeShiftMetrics(production.ShiftInput{
		Hours:           entry.Hours,
		CycleSeconds:    cycle,
		DowntimeMinutes: entry.DowntimeMinutes,
		TotalProduced:   entry.TotalProduced,
		Scrap:           entry.Scrap,
	})
	record.PlannedTarget = metrics.PlannedTarget
	record.OperativeTarget = metrics.OperativeTarget
	record.GoodUnits = metrics.GoodUnits
	record.Availability = metrics.Availability
	record.Performance = metrics.Performance
	record.Quality = metrics.Quality
	record.OEE = metrics.OEE

	if err := s.shifts.SaveShiftRecord(record); err != nil {
		return nil, fmt.Errorf("failed to save shift record: %w", err)
	}

	s.emit(events.NewShiftRecordedEvent(*record))

	return record, nil
}

// DailyReport aggregates every shift record for one date
func (s *PlanningService) DailyReport(ctx context.Context, date string) (production.DailyAggregate, error) {
	records, err := s.shifts.GetShiftRecords()
	if err != nil {
		return production.DailyAggregate{}, fmt.Errorf("failed to read shift records: %w", err)
	}
	return production.AggregateByDate(records, date), nil
}

// GlobalReport aggregates every shift record with no date filter
func (s *PlanningService) GlobalReport(ctx context.Context) (production.GlobalAggregate, error) {
	records, err := s.shifts.GetShiftRecords()
	if err != nil {
		return production.GlobalAggregate{}, fmt.Errorf("failed to read shift records: %w", err)
	}
	return production.AggregateGlobal(records), nil
}

// MachineHistory averages a machine's stored percentage columns
func (s *PlanningService) MachineHistory(ctx context.Context, machineID entities.MachineID) (production.MachineAverages, error) {
	records, err := s.shifts.GetShiftRecords()
	if err != nil {
		return production.MachineAverages{}, fmt.Errorf("failed to read shift records: %w", err)
	}
	return production.MachineHistory(records, machineID), nil
}

// Allocations materializes the current snapshot and runs the FIFO
// allocator over it. Every call recomputes from the raw stores; nothing
// is cached, so the result always reflects the freshest state.
func (s *PlanningService) Allocations(ctx context.Context) (*production.AllocationResult, error) {
	orders, producedByMold, approvedByOrder, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return production.ComputeFIFOAssignments(orders, producedByMold, approvedByOrder)
}

// ApproveShipments gates a batch of pending shipments against the live
// FIFO ceiling and commits the approved flags only when the whole batch
// clears. The ceiling is re-derived inside the critical section.
func (s *PlanningService) ApproveShipments(ctx context.Context, candidateIDs []entities.ShipmentID) (*production.ApprovalDecision, error) {
	s.approvalMutex.Lock()
	defer s.approvalMutex.Unlock()

	orders, producedByMold, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	shipments, err := s.shipments.GetShipments()
	if err != nil {
		return nil, fmt.Errorf("failed to read shipments: %w", err)
	}

	decision, err := production.CheckApproval(candidateIDs, production.ApprovalSnapshot{
		Orders:         orders,
		Shipments:      shipments,
		ProducedByMold: producedByMold,
	})
	if err != nil {
		return nil, err
	}

	if !decision.Approved {
		s.emit(events.NewApprovalRejectedEvent(decision.RejectedIDs, decision.Ceilings, decision.Reason))
		return decision, nil
	}

	for _, id := range decision.ApprovedIDs {
		if err := s.shipments.ApproveShipment(id); err != nil {
			return nil, fmt.Errorf("failed to commit approval for shipment %s: %w", id, err)
		}
	}
	s.emit(events.NewShipmentsApprovedEvent(decision.ApprovedIDs, decision.Ceilings))

	return decision, nil
}

// MarkOrderDone transitions an order from plan to done and records the
// transition in the audit trail. A done order keeps its FIFO position;
// allocation does not filter on state.
func (s *PlanningService) MarkOrderDone(ctx context.Context, orderID entities.OrderID) error {
	if err := s.orders.MarkOrderDone(orderID); err != nil {
		return fmt.Errorf("failed to mark order done: %w", err)
	}
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return fmt.Errorf("failed to read order: %w", err)
	}
	s.emit(events.NewOrderDoneEvent(*order))
	return nil
}

// DeleteOrder removes an order from the store. Shipments referencing the
// order are left in place.
func (s *PlanningService) DeleteOrder(ctx context.Context, orderID entities.OrderID) error {
	if err := s.orders.DeleteOrder(orderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	s.emit(events.NewOrderDeletedEvent(orderID))
	return nil
}

// EstimateOrder estimates an order's schedule from its mold recipe
func (s *PlanningService) EstimateOrder(ctx context.Context, orderID entities.OrderID) (production.ScheduleEstimate, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return production.ScheduleEstimate{}, fmt.Errorf("failed to read order: %w", err)
	}

	var recipe *entities.MoldRecipe
	if s.catalog != nil {
		recipe, _ = s.catalog.GetRecipe(order.MoldID)
	}

	return production.EstimateOrderSchedule(*order, recipe), nil
}

// snapshot gathers the orders, per-mold production and per-order approved
// quantities the allocator needs
func (s *PlanningService) snapshot() ([]entities.Order, map[entities.MoldID]entities.Quantity, map[entities.OrderID]entities.Quantity, error) {
	orders, err := s.orders.GetOrders()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read orders: %w", err)
	}
	records, err := s.shifts.GetShiftRecords()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read shift records: %w", err)
	}
	approvedByOrder, err := s.shipments.ApprovedQuantityByOrder()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read shipments: %w", err)
	}

	producedByMold := make(map[entities.MoldID]entities.Quantity)
	for _, order := range orders {
		if string(order.MoldID) == "" {
			continue
		}
		if _, done := producedByMold[order.MoldID]; !done {
			producedByMold[order.MoldID] = production.ProducedByMold(records, order.MoldID, "")
		}
	}

	return orders, producedByMold, approvedByOrder, nil
}

func (s *PlanningService) emit(event events.Event) {
	if s.events == nil {
		return
	}
	// Audit is best-effort; a full store must not fail the operation.
	_ = s.events.AppendEvent(event.StreamID(), event)
}
