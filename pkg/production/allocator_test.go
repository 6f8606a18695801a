package production

import (
	"errors"
	"reflect"
	"testing"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

func twoOrderFixture() []entities.Order {
	return []entities.Order{
		{ID: "ORD2", MoldID: "MOLD_A", TargetQty: 700, StartAt: "2024-01-05"},
		{ID: "ORD1", MoldID: "MOLD_A", TargetQty: 600, StartAt: "2024-01-01"},
	}
}

func TestComputeFIFOAssignments_OrderingLaw(t *testing.T) {
	produced := map[entities.MoldID]entities.Quantity{"MOLD_A": 1000}

	result, err := ComputeFIFOAssignments(twoOrderFixture(), produced, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	first := result.PerOrder["ORD1"]
	second := result.PerOrder["ORD2"]

	if first.Assigned != 600 {
		t.Errorf("Expected ORD1 assigned 600, got %d", first.Assigned)
	}
	if first.Pending != 0 {
		t.Errorf("Expected ORD1 pending 0, got %d", first.Pending)
	}
	if second.Assigned != 400 {
		t.Errorf("Expected ORD2 assigned 400, got %d", second.Assigned)
	}
	if second.Pending != 300 {
		t.Errorf("Expected ORD2 pending 300, got %d", second.Pending)
	}

	pool := result.PerMold["MOLD_A"]
	if pool.Gross != 1000 || pool.Shipped != 0 || pool.Net != 1000 || pool.Remaining != 0 {
		t.Errorf("Unexpected pool: %+v", pool)
	}
}

func TestComputeFIFOAssignments_PreShippedReducesNet(t *testing.T) {
	produced := map[entities.MoldID]entities.Quantity{"MOLD_A": 1000}
	approved := map[entities.OrderID]entities.Quantity{"ORD1": 500}

	result, err := ComputeFIFOAssignments(twoOrderFixture(), produced, approved)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	pool := result.PerMold["MOLD_A"]
	if pool.Net != 500 {
		t.Fatalf("Expected net 500 after 500 approved-shipped, got %d", pool.Net)
	}

	first := result.PerOrder["ORD1"]
	if first.Shipped != 500 || first.Assigned != 100 {
		t.Errorf("Expected ORD1 shipped=500 assigned=100, got shipped=%d assigned=%d",
			first.Shipped, first.Assigned)
	}
	if first.Progress != 600 || first.Pending != 0 {
		t.Errorf("Expected ORD1 progress=600 pending=0, got progress=%d pending=%d",
			first.Progress, first.Pending)
	}

	second := result.PerOrder["ORD2"]
	if second.Assigned != 400 || second.Pending != 300 {
		t.Errorf("Expected ORD2 assigned=400 pending=300, got assigned=%d pending=%d",
			second.Assigned, second.Pending)
	}
}

func TestComputeFIFOAssignments_ConservationLaw(t *testing.T) {
	orders := []entities.Order{
		{ID: "A", MoldID: "M", TargetQty: 120, StartAt: "2024-02-01"},
		{ID: "B", MoldID: "M", TargetQty: 0, StartAt: "2024-02-02"},
		{ID: "C", MoldID: "M", TargetQty: 350, StartAt: "2024-02-03"},
	}
	produced := map[entities.MoldID]entities.Quantity{"M": 777}

	result, err := ComputeFIFOAssignments(orders, produced, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var assigned entities.Quantity
	for _, assignment := range result.PerOrder {
		assigned += assignment.Assigned
	}
	pool := result.PerMold["M"]
	if assigned+pool.Remaining != pool.Net {
		t.Errorf("Conservation violated: assigned=%d remaining=%d net=%d",
			assigned, pool.Remaining, pool.Net)
	}
	if pool.Remaining != 307 {
		t.Errorf("Expected remaining 307, got %d", pool.Remaining)
	}
}

func TestComputeFIFOAssignments_ZeroTargetConsumesNothing(t *testing.T) {
	orders := []entities.Order{
		{ID: "A", MoldID: "M", TargetQty: 0, StartAt: "2024-02-01"},
		{ID: "B", MoldID: "M", TargetQty: 100, StartAt: "2024-02-02"},
	}
	produced := map[entities.MoldID]entities.Quantity{"M": 100}

	result, err := ComputeFIFOAssignments(orders, produced, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.PerOrder["A"].Assigned != 0 {
		t.Errorf("Expected zero-target order assigned 0, got %d", result.PerOrder["A"].Assigned)
	}
	if result.PerOrder["B"].Assigned != 100 {
		t.Errorf("Expected stock to flow past zero-target order, got %d", result.PerOrder["B"].Assigned)
	}
}

func TestComputeFIFOAssignments_EmptyStartSortsFirst(t *testing.T) {
	orders := []entities.Order{
		{ID: "DATED", MoldID: "M", TargetQty: 100, StartAt: "2024-01-01"},
		{ID: "BLANK", MoldID: "M", TargetQty: 100, StartAt: ""},
	}
	produced := map[entities.MoldID]entities.Quantity{"M": 100}

	result, err := ComputeFIFOAssignments(orders, produced, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.PerOrder["BLANK"].Assigned != 100 {
		t.Errorf("Expected blank-start order to claim first, got %d", result.PerOrder["BLANK"].Assigned)
	}
	if result.PerOrder["DATED"].Assigned != 0 {
		t.Errorf("Expected dated order starved, got %d", result.PerOrder["DATED"].Assigned)
	}
}

func TestComputeFIFOAssignments_TieBrokenByOrderID(t *testing.T) {
	orders := []entities.Order{
		{ID: "B", MoldID: "M", TargetQty: 100, StartAt: "2024-01-01"},
		{ID: "A", MoldID: "M", TargetQty: 100, StartAt: "2024-01-01"},
	}
	produced := map[entities.MoldID]entities.Quantity{"M": 100}

	result, err := ComputeFIFOAssignments(orders, produced, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.PerOrder["A"].Assigned != 100 {
		t.Errorf("Expected order A to win the tie, got %d", result.PerOrder["A"].Assigned)
	}
}

func TestComputeFIFOAssignments_BlankMoldReportedUnassigned(t *testing.T) {
	orders := []entities.Order{
		{ID: "ORPHAN", MoldID: "", TargetQty: 500, StartAt: "2024-01-01"},
		{ID: "NORMAL", MoldID: "M", TargetQty: 100, StartAt: "2024-01-02"},
	}
	produced := map[entities.MoldID]entities.Quantity{"M": 100}

	result, err := ComputeFIFOAssignments(orders, produced, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, present := result.PerOrder["ORPHAN"]; present {
		t.Error("Expected orphan order absent from allocation output")
	}
	if len(result.Unassigned) != 1 || result.Unassigned[0] != "ORPHAN" {
		t.Errorf("Expected orphan reported as unassigned, got %v", result.Unassigned)
	}
}

func TestComputeFIFOAssignments_DuplicateOrderIDs(t *testing.T) {
	orders := []entities.Order{
		{ID: "DUP", MoldID: "M", TargetQty: 100},
		{ID: "DUP", MoldID: "M", TargetQty: 200},
	}

	_, err := ComputeFIFOAssignments(orders, nil, nil)
	if err == nil {
		t.Fatal("Expected error for duplicate order ids")
	}

	var integrityErr *SnapshotIntegrityError
	if !errors.As(err, &integrityErr) {
		t.Errorf("Expected SnapshotIntegrityError, got %T: %v", err, err)
	}
}

func TestComputeFIFOAssignments_PureAndIdempotent(t *testing.T) {
	orders := twoOrderFixture()
	produced := map[entities.MoldID]entities.Quantity{"MOLD_A": 1000}
	approved := map[entities.OrderID]entities.Quantity{"ORD1": 200}

	first, err := ComputeFIFOAssignments(orders, produced, approved)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := ComputeFIFOAssignments(orders, produced, approved)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical snapshots")
	}
	if orders[0].ID != "ORD2" || orders[1].ID != "ORD1" {
		t.Error("Expected input order slice left unmutated")
	}
}
