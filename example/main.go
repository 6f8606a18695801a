package main

import (
	"context"
	"fmt"

	"github.com/moldworks/moldtrack/pkg/application/services"
	"github.com/moldworks/moldtrack/pkg/domain/entities"
	"github.com/moldworks/moldtrack/pkg/infrastructure/events"
	"github.com/moldworks/moldtrack/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	shiftRepo := memory.NewShiftRecordRepository()
	orderRepo := memory.NewOrderRepository()
	shipmentRepo := memory.NewShipmentRepository()
	catalogRepo := memory.NewCatalogRepository()
	eventStore := events.NewInMemoryEventStore()

	// Set up a small plant scenario
	setupPlantScenario(orderRepo, shipmentRepo, catalogRepo)

	service := services.NewPlanningService(shiftRepo, orderRepo, shipmentRepo, catalogRepo, eventStore)

	fmt.Println("🏭 Recording a week of shifts on MOLD_A...")
	dates := []string{"2024-03-04", "2024-03-05"}
	for _, date := range dates {
		record, err := service.RecordShift(ctx, services.ShiftEntry{
			MachineID:       "PRESS_01",
			Date:            date,
			Shift:           1,
			Operator:        "Moretti",
			MoldID:          "MOLD_A",
			PartID:          "CAP_40MM",
			Hours:           8,
			DowntimeMinutes: 60,
			TotalProduced:   800,
			Scrap:           40,
		})
		if err != nil {
			fmt.Printf("❌ Shift entry failed: %v\n", err)
			return
		}
		fmt.Printf("  %s: good=%d target=%d OEE=%.2f\n",
			record.Date, record.GoodUnits, record.PlannedTarget, record.OEE)
	}
	fmt.Println()

	// Global production summary
	global, err := service.GlobalReport(ctx)
	if err != nil {
		fmt.Printf("❌ Report failed: %v\n", err)
		return
	}
	fmt.Println("📊 Production Summary:")
	fmt.Printf("  Records: %d | Total: %d | Good: %d | OEE: %.2f\n\n",
		global.RecordCount, global.Total, global.Good, global.OEE)

	// FIFO allocation across the orders sharing MOLD_A
	allocation, err := service.Allocations(ctx)
	if err != nil {
		fmt.Printf("❌ Allocation failed: %v\n", err)
		return
	}
	fmt.Println("📦 FIFO Allocation:")
	for _, orderID := range []entities.OrderID{"ORD-1001", "ORD-1002"} {
		assignment := allocation.PerOrder[orderID]
		fmt.Printf("  %s: target=%d assigned=%d pending=%d\n",
			orderID, assignment.Target, assignment.Assigned, assignment.Pending)
	}
	fmt.Println()

	// Approve the first shipment; it fits inside ORD-1001's assigned ceiling
	decision, err := service.ApproveShipments(ctx, []entities.ShipmentID{"SHP-1"})
	if err != nil {
		fmt.Printf("❌ Approval check failed: %v\n", err)
		return
	}
	if decision.Approved {
		fmt.Println("✅ SHP-1 approved")
	} else {
		fmt.Printf("🚨 SHP-1 rejected: %s\n", decision.Reason)
	}

	// The second shipment asks for more than the re-derived ceiling allows
	decision, err = service.ApproveShipments(ctx, []entities.ShipmentID{"SHP-2"})
	if err != nil {
		fmt.Printf("❌ Approval check failed: %v\n", err)
		return
	}
	if decision.Approved {
		fmt.Println("✅ SHP-2 approved")
	} else {
		fmt.Printf("🚨 SHP-2 rejected: %s\n", decision.Reason)
	}
	fmt.Println()

	// Schedule estimate from the mold recipe
	estimate, err := service.EstimateOrder(ctx, "ORD-1001")
	if err != nil {
		fmt.Printf("❌ Estimate failed: %v\n", err)
		return
	}
	fmt.Printf("🗓  ORD-1001 estimate: %d shots, %.2f minutes total\n",
		estimate.Shots, estimate.TotalMinutes)
}

func setupPlantScenario(
	orderRepo *memory.OrderRepository,
	shipmentRepo *memory.ShipmentRepository,
	catalogRepo *memory.CatalogRepository,
) {
	catalogRepo.LoadMachines([]*entities.Machine{
		{ID: "PRESS_01", Name: "Engel 200T"},
	})
	catalogRepo.LoadRecipes([]*entities.MoldRecipe{
		{
			MoldID:          "MOLD_A",
			PartID:          "CAP_40MM",
			CycleSeconds:    30,
			TotalCavities:   4,
			EnabledCavities: 4,
			Active:          true,
		},
	})

	// Two orders compete for MOLD_A's output; the older one wins first.
	orderRepo.LoadOrders([]*entities.Order{
		{ID: "ORD-1001", PartID: "CAP_40MM", MoldID: "MOLD_A", TargetQty: 900, StartAt: "2024-03-01", SetupMinutes: 45},
		{ID: "ORD-1002", PartID: "CAP_40MM", MoldID: "MOLD_A", TargetQty: 800, StartAt: "2024-03-04", SetupMinutes: 45},
	})

	shipmentRepo.LoadShipments([]*entities.Shipment{
		{ID: "SHP-1", OrderID: "ORD-1001", ShipDate: "2024-03-08", Quantity: 900, Destination: "Warehouse B", Status: entities.ShipmentPending},
		{ID: "SHP-2", OrderID: "ORD-1002", ShipDate: "2024-03-08", Quantity: 700, Destination: "Warehouse B", Status: entities.ShipmentPending},
	})
}
