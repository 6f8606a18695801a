package memory

import (
	"testing"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

func TestOrderRepository_SaveGetDelete(t *testing.T) {
	repo := NewOrderRepository()

	order := &entities.Order{ID: "ORD1", MoldID: "MOLD_A", TargetQty: 500, StartAt: "2024-01-01"}
	if err := repo.SaveOrder(order); err != nil {
		t.Fatalf("Failed to save order: %v", err)
	}

	retrieved, err := repo.GetOrder("ORD1")
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if retrieved.TargetQty != 500 {
		t.Errorf("Expected target 500, got %d", retrieved.TargetQty)
	}

	if err := repo.DeleteOrder("ORD1"); err != nil {
		t.Fatalf("Failed to delete order: %v", err)
	}
	if _, err := repo.GetOrder("ORD1"); err == nil {
		t.Error("Expected deleted order to be gone")
	}
	if err := repo.DeleteOrder("ORD1"); err == nil {
		t.Error("Expected error deleting unknown order")
	}
}

func TestOrderRepository_MarkOrderDone(t *testing.T) {
	repo := NewOrderRepository()

	order := &entities.Order{ID: "ORD1", MoldID: "MOLD_A", TargetQty: 500, State: entities.OrderPlanned}
	if err := repo.SaveOrder(order); err != nil {
		t.Fatalf("Failed to save order: %v", err)
	}

	if err := repo.MarkOrderDone("ORD1"); err != nil {
		t.Fatalf("Failed to mark order done: %v", err)
	}

	retrieved, err := repo.GetOrder("ORD1")
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if retrieved.State != entities.OrderDone {
		t.Errorf("Expected done state, got %v", retrieved.State)
	}

	if err := repo.MarkOrderDone("ORD1"); err == nil {
		t.Error("Expected error marking an already-done order")
	}
}

func TestOrderRepository_InsertionOrderPreserved(t *testing.T) {
	repo := NewOrderRepository()

	ids := []entities.OrderID{"C", "A", "B"}
	for _, id := range ids {
		if err := repo.SaveOrder(&entities.Order{ID: id, MoldID: "M", TargetQty: 10}); err != nil {
			t.Fatalf("Failed to save order %s: %v", id, err)
		}
	}

	orders, err := repo.GetOrders()
	if err != nil {
		t.Fatalf("Failed to get orders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("Expected 3 orders, got %d", len(orders))
	}
	for i, id := range ids {
		if orders[i].ID != id {
			t.Errorf("Expected order %s at position %d, got %s", id, i, orders[i].ID)
		}
	}
}
