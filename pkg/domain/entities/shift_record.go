package entities

import (
	"fmt"
)

// MachineID represents a unique injection-molding machine identifier
type MachineID string

// MoldID represents a unique mold identifier
type MoldID string

// PartID represents a unique part identifier
type PartID string

// Quantity represents an integer quantity value for discrete production units
type Quantity int64

// ShiftRecord represents one saved shift entry with its derived metrics.
// Records are immutable once saved; corrections append a new record under
// the same date key in the owning store.
type ShiftRecord struct {
	MachineID       MachineID
	Date            string // YYYY-MM-DD, compared lexicographically
	Shift           int
	Operator        string
	MoldID          MoldID
	PartID          PartID
	CycleSeconds    float64
	Hours           float64
	DowntimeMinutes float64
	PlannedTarget   Quantity
	OperativeTarget Quantity
	TotalProduced   Quantity
	Scrap           Quantity
	GoodUnits       Quantity
	Availability    float64
	Performance     float64
	Quality         float64
	OEE             float64
}

// NewShiftRecord creates a validated ShiftRecord. Only identity fields are
// validated; numeric fields follow the lenient coercion policy and are
// never rejected here.
func NewShiftRecord(machineID MachineID, date string, shift int, operator string, moldID MoldID, partID PartID) (*ShiftRecord, error) {
	if string(machineID) == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}
	if date == "" {
		return nil, fmt.Errorf("date cannot be empty")
	}
	if shift < 0 {
		return nil, fmt.Errorf("shift number cannot be negative, got %d", shift)
	}

	return &ShiftRecord{
		MachineID: machineID,
		Date:      date,
		Shift:     shift,
		Operator:  operator,
		MoldID:    moldID,
		PartID:    partID,
	}, nil
}
