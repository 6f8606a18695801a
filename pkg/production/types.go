package production

import (
	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

// ShiftInput holds one shift's raw counts as entered. Negative values are
// coerced to zero during computation, never rejected.
type ShiftInput struct {
	Hours           float64
	CycleSeconds    float64
	DowntimeMinutes float64
	TotalProduced   entities.Quantity
	Scrap           entities.Quantity
}

// ShiftMetrics contains the derived per-shift efficiency metrics.
// Availability, Performance and Quality are fractions in [0,1]; OEE is a
// percentage in [0,100]. All four are rounded to two decimal places.
type ShiftMetrics struct {
	PlannedTarget   entities.Quantity
	OperativeTarget entities.Quantity
	GoodUnits       entities.Quantity
	Availability    float64
	Performance     float64
	Quality         float64
	OEE             float64
}

// DailyAggregate contains the cross-record rollup for one date
type DailyAggregate struct {
	Date        string
	Count       int
	Total       entities.Quantity
	Scrap       entities.Quantity
	Good        entities.Quantity
	MetaTarget  entities.Quantity
	Performance float64
	Quality     float64
	OEE         float64
}

// GlobalAggregate contains the rollup across every shift record
type GlobalAggregate struct {
	RecordCount   int
	DistinctDates int
	Total         entities.Quantity
	Scrap         entities.Quantity
	Good          entities.Quantity
	MetaTarget    entities.Quantity
	Performance   float64
	Quality       float64
	OEE           float64
}

// MachineAverages contains the arithmetic mean of the stored percentage
// columns across all of a machine's shift records
type MachineAverages struct {
	MachineID    entities.MachineID
	RecordCount  int
	Availability float64
	Performance  float64
	Quality      float64
	OEE          float64
}

// OrderAssignment is the allocator's per-order output: how much of the
// mold's net stock currently belongs to the order
type OrderAssignment struct {
	OrderID  entities.OrderID
	MoldID   entities.MoldID
	Target   entities.Quantity
	Shipped  entities.Quantity
	Assigned entities.Quantity
	Progress entities.Quantity
	Pending  entities.Quantity
}

// MoldPool is the allocator's per-mold output: the stock pool the orders
// drew from and whatever surplus was left unassigned
type MoldPool struct {
	MoldID    entities.MoldID
	Gross     entities.Quantity
	Shipped   entities.Quantity
	Net       entities.Quantity
	Remaining entities.Quantity
}

// AllocationResult contains the full FIFO distribution for a snapshot.
// Orders with a blank mold id never receive stock and are listed in
// Unassigned instead.
type AllocationResult struct {
	PerOrder   map[entities.OrderID]OrderAssignment
	PerMold    map[entities.MoldID]MoldPool
	Unassigned []entities.OrderID
}

// ApprovalSnapshot is the fully materialized state the approval gate
// derives its ceiling from. It must reflect every already-committed
// shipment at the moment of the check.
type ApprovalSnapshot struct {
	Orders         []entities.Order
	Shipments      []entities.Shipment
	ProducedByMold map[entities.MoldID]entities.Quantity
}

// ApprovalDecision is the gate's verdict on a candidate batch. A rejected
// batch carries the computed ceilings and a reason string sufficient for
// the caller to build a user-facing message.
type ApprovalDecision struct {
	Approved    bool
	ApprovedIDs []entities.ShipmentID
	RejectedIDs []entities.ShipmentID
	Ceilings    map[entities.OrderID]entities.Quantity
	Reason      string
}

// ScheduleEstimate is the estimated production schedule for one order
// derived from its mold recipe and overrides
type ScheduleEstimate struct {
	CycleSeconds float64
	Cavities     int
	Shots        entities.Quantity
	RunMinutes   float64
	TotalMinutes float64
}
