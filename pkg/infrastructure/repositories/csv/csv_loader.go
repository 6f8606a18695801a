package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
	"github.com/moldworks/moldtrack/pkg/production"
)

// Loader handles loading production snapshots from CSV files.
//
// Identifier columns are parsed strictly; numeric count columns follow
// the lenient policy and coerce garbage or negative values to zero
// instead of failing the load.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadShiftRecords loads shift records from a CSV file, deriving the
// metric columns from the raw counts on the way in.
func (l *Loader) LoadShiftRecords(filename string) ([]*entities.ShiftRecord, error) {
	records, err := readAll(filename, "shifts")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"machine_id", "date", "shift", "operator", "mold_id", "part_id", "cycle_seconds", "hours", "downtime_minutes", "total_produced", "scrap"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("shifts CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var shifts []*entities.ShiftRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("shifts CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		shift, err := parseShiftRecord(record)
		if err != nil {
			return nil, fmt.Errorf("shifts CSV row %d: %w", i+2, err)
		}

		shifts = append(shifts, shift)
	}

	return shifts, nil
}

// LoadOrders loads production orders from a CSV file
func (l *Loader) LoadOrders(filename string) ([]*entities.Order, error) {
	records, err := readAll(filename, "orders")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"order_id", "part_id", "mold_id", "machine_id", "target_qty", "start_at", "estimated_end", "setup_minutes", "state", "cycle_override", "cavity_override"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var orders []*entities.Order
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		order, err := parseOrder(record)
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: %w", i+2, err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// LoadShipments loads shipments from a CSV file. A blank shipment_id is
// permitted; the entity constructor mints one.
func (l *Loader) LoadShipments(filename string) ([]*entities.Shipment, error) {
	records, err := readAll(filename, "shipments")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"shipment_id", "order_id", "ship_date", "quantity", "destination", "note", "status"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("shipments CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var shipments []*entities.Shipment
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("shipments CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		shipment, err := parseShipment(record)
		if err != nil {
			return nil, fmt.Errorf("shipments CSV row %d: %w", i+2, err)
		}

		shipments = append(shipments, shipment)
	}

	return shipments, nil
}

// LoadRecipes loads mold recipes from a CSV file
func (l *Loader) LoadRecipes(filename string) ([]*entities.MoldRecipe, error) {
	records, err := readAll(filename, "recipes")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"mold_id", "part_id", "cycle_seconds", "total_cavities", "enabled_cavities", "expected_scrap_pct", "active"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("recipes CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var recipes []*entities.MoldRecipe
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("recipes CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		recipe, err := parseRecipe(record)
		if err != nil {
			return nil, fmt.Errorf("recipes CSV row %d: %w", i+2, err)
		}

		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

// LoadMachines loads the machine catalog from a CSV file
func (l *Loader) LoadMachines(filename string) ([]*entities.Machine, error) {
	records, err := readAll(filename, "machines")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"machine_id", "name"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("machines CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var machines []*entities.Machine
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("machines CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		if record[0] == "" {
			return nil, fmt.Errorf("machines CSV row %d: machine_id cannot be empty", i+2)
		}

		machines = append(machines, &entities.Machine{
			ID:   entities.MachineID(record[0]),
			Name: record[1],
		})
	}

	return machines, nil
}

// Helper functions for parsing CSV records

func readAll(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseShiftRecord(record []string) (*entities.ShiftRecord, error) {
	shiftNumber := int(lenientInt(record[2]))

	shift, err := entities.NewShiftRecord(
		entities.MachineID(record[0]),
		record[1],
		shiftNumber,
		record[3],
		entities.MoldID(record[4]),
		entities.PartID(record[5]),
	)
	if err != nil {
		return nil, err
	}

	shift.CycleSeconds = lenientFloat(record[6])
	shift.Hours = lenientFloat(record[7])
	shift.DowntimeMinutes = lenientFloat(record[8])
	shift.TotalProduced = entities.Quantity(lenientInt(record[9]))
	shift.Scrap = entities.Quantity(lenientInt(record[10]))

	metrics := production.ComputeShiftMetrics(production.ShiftInput{
		Hours:           shift.Hours,
		CycleSeconds:    shift.CycleSeconds,
		DowntimeMinutes: shift.DowntimeMinutes,
		TotalProduced:   shift.TotalProduced,
		Scrap:           shift.Scrap,
	})
	shift.PlannedTarget = metrics.PlannedTarget
	shift.OperativeTarget = metrics.OperativeTarget
	shift.GoodUnits = metrics.GoodUnits
	shift.Availability = metrics.Availability
	shift.Performance = metrics.Performance
	shift.Quality = metrics.Quality
	shift.OEE = metrics.OEE

	return shift, nil
}

func parseOrder(record []string) (*entities.Order, error) {
	order, err := entities.NewOrder(
		entities.OrderID(record[0]),
		entities.PartID(record[1]),
		entities.MoldID(record[2]),
		entities.MachineID(record[3]),
		entities.Quantity(lenientInt(record[4])),
		record[5],
	)
	if err != nil {
		return nil, err
	}

	order.EstimatedEnd = record[6]
	order.SetupMinutes = lenientFloat(record[7])
	order.CycleOverride = lenientFloat(record[9])
	order.CavityOverride = int(lenientInt(record[10]))

	state, err := parseOrderState(record[8])
	if err != nil {
		return nil, err
	}
	order.State = state

	return order, nil
}

func parseShipment(record []string) (*entities.Shipment, error) {
	shipment, err := entities.NewShipment(
		entities.ShipmentID(record[0]),
		entities.OrderID(record[1]),
		record[2],
		entities.Quantity(lenientInt(record[3])),
		record[4],
		record[5],
	)
	if err != nil {
		return nil, err
	}

	status, err := parseApprovalStatus(record[6])
	if err != nil {
		return nil, err
	}
	shipment.Status = status

	return shipment, nil
}

func parseRecipe(record []string) (*entities.MoldRecipe, error) {
	active := strings.EqualFold(strings.TrimSpace(record[6]), "true") || record[6] == "1"

	return entities.NewMoldRecipe(
		entities.MoldID(record[0]),
		entities.PartID(record[1]),
		lenientFloat(record[2]),
		int(lenientInt(record[3])),
		int(lenientInt(record[4])),
		lenientFloat(record[5]),
		active,
	)
}

func parseOrderState(s string) (entities.OrderState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plan", "":
		return entities.OrderPlanned, nil
	case "done":
		return entities.OrderDone, nil
	default:
		return entities.OrderPlanned, fmt.Errorf("invalid state: %s (expected: plan or done)", s)
	}
}

func parseApprovalStatus(s string) (entities.ApprovalStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "":
		return entities.ShipmentPending, nil
	case "approved":
		return entities.ShipmentApproved, nil
	default:
		return entities.ShipmentPending, fmt.Errorf("invalid status: %s (expected: pending or approved)", s)
	}
}

// lenientInt coerces garbage and negative count values to zero
func lenientInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// lenientFloat coerces garbage and negative values to zero
func lenientFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
