package production

import (
	"testing"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

func TestEstimateOrderSchedule_FromRecipe(t *testing.T) {
	order := entities.Order{ID: "ORD1", MoldID: "MOLD_A", TargetQty: 1000, SetupMinutes: 45}
	recipe := &entities.MoldRecipe{MoldID: "MOLD_A", CycleSeconds: 30, TotalCavities: 4, EnabledCavities: 4}

	estimate := EstimateOrderSchedule(order, recipe)

	if estimate.Cavities != 4 {
		t.Errorf("Expected 4 cavities, got %d", estimate.Cavities)
	}
	if estimate.Shots != 250 {
		t.Errorf("Expected 250 shots, got %d", estimate.Shots)
	}
	if estimate.RunMinutes != 125 {
		t.Errorf("Expected 125 run minutes, got %v", estimate.RunMinutes)
	}
	if estimate.TotalMinutes != 170 {
		t.Errorf("Expected 170 total minutes, got %v", estimate.TotalMinutes)
	}
}

func TestEstimateOrderSchedule_OverridesWin(t *testing.T) {
	order := entities.Order{
		ID: "ORD1", MoldID: "MOLD_A", TargetQty: 1000,
		CycleOverride: 20, CavityOverride: 2,
	}
	recipe := &entities.MoldRecipe{MoldID: "MOLD_A", CycleSeconds: 30, TotalCavities: 4, EnabledCavities: 4}

	estimate := EstimateOrderSchedule(order, recipe)

	if estimate.CycleSeconds != 20 || estimate.Cavities != 2 {
		t.Errorf("Expected overrides 20s/2 cavities, got %v/%d", estimate.CycleSeconds, estimate.Cavities)
	}
	if estimate.Shots != 500 {
		t.Errorf("Expected 500 shots, got %d", estimate.Shots)
	}
	if estimate.RunMinutes != 166.67 {
		t.Errorf("Expected 166.67 run minutes, got %v", estimate.RunMinutes)
	}
}

func TestEstimateOrderSchedule_NoRecipe(t *testing.T) {
	order := entities.Order{ID: "ORD1", TargetQty: 100}

	estimate := EstimateOrderSchedule(order, nil)

	if estimate.Cavities != 1 {
		t.Errorf("Expected cavity fallback of 1, got %d", estimate.Cavities)
	}
	if estimate.Shots != 100 {
		t.Errorf("Expected 100 shots, got %d", estimate.Shots)
	}
	if estimate.RunMinutes != 0 {
		t.Errorf("Expected 0 run minutes with no cycle, got %v", estimate.RunMinutes)
	}
}
