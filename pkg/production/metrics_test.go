package production

import (
	"testing"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

func TestComputeShiftMetrics_StandardShift(t *testing.T) {
	// 8h shift, 30s cycle, 60min downtime, 800 produced with 40 scrap.
	metrics := ComputeShiftMetrics(ShiftInput{
		Hours:           8,
		CycleSeconds:    30,
		DowntimeMinutes: 60,
		TotalProduced:   800,
		Scrap:           40,
	})

	if metrics.PlannedTarget != 960 {
		t.Errorf("Expected planned target 960, got %d", metrics.PlannedTarget)
	}
	if metrics.OperativeTarget != 840 {
		t.Errorf("Expected operative target 840, got %d", metrics.OperativeTarget)
	}
	if metrics.GoodUnits != 760 {
		t.Errorf("Expected 760 good units, got %d", metrics.GoodUnits)
	}
	if metrics.Availability != 0.88 {
		t.Errorf("Expected availability 0.88, got %v", metrics.Availability)
	}
	if metrics.Performance != 0.90 {
		t.Errorf("Expected performance 0.90, got %v", metrics.Performance)
	}
	if metrics.Quality != 0.95 {
		t.Errorf("Expected quality 0.95, got %v", metrics.Quality)
	}
	if metrics.OEE != 75.21 {
		t.Errorf("Expected OEE 75.21, got %v", metrics.OEE)
	}
}

func TestComputeShiftMetrics_PerformanceClampedToOne(t *testing.T) {
	// Good output above the ideal rate must clamp, keeping OEE <= 100.
	metrics := ComputeShiftMetrics(ShiftInput{
		Hours:         1,
		CycleSeconds:  10,
		TotalProduced: 500,
		Scrap:         0,
	})

	if metrics.Performance != 1 {
		t.Errorf("Expected performance clamped to 1, got %v", metrics.Performance)
	}
	if metrics.OEE != 100 {
		t.Errorf("Expected OEE 100, got %v", metrics.OEE)
	}
}

func TestComputeShiftMetrics_ZeroDenominators(t *testing.T) {
	tests := []struct {
		name  string
		input ShiftInput
	}{
		{"zero hours", ShiftInput{Hours: 0, CycleSeconds: 30, TotalProduced: 100}},
		{"zero cycle", ShiftInput{Hours: 8, CycleSeconds: 0, TotalProduced: 100}},
		{"downtime swallows shift", ShiftInput{Hours: 1, CycleSeconds: 30, DowntimeMinutes: 120, TotalProduced: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := ComputeShiftMetrics(tt.input)

			if metrics.Availability < 0 || metrics.Availability > 1 {
				t.Errorf("Availability out of range: %v", metrics.Availability)
			}
			if metrics.Performance < 0 || metrics.Performance > 1 {
				t.Errorf("Performance out of range: %v", metrics.Performance)
			}
			if metrics.OEE < 0 || metrics.OEE > 100 {
				t.Errorf("OEE out of range: %v", metrics.OEE)
			}
		})
	}
}

func TestComputeShiftMetrics_ZeroCycleHasZeroTargets(t *testing.T) {
	metrics := ComputeShiftMetrics(ShiftInput{Hours: 8, CycleSeconds: 0, TotalProduced: 100})

	if metrics.PlannedTarget != 0 || metrics.OperativeTarget != 0 {
		t.Errorf("Expected zero targets with zero cycle, got planned=%d operative=%d",
			metrics.PlannedTarget, metrics.OperativeTarget)
	}
	if metrics.Performance != 0 {
		t.Errorf("Expected zero performance with zero cycle, got %v", metrics.Performance)
	}
}

func TestComputeShiftMetrics_NegativeInputsCoercedToZero(t *testing.T) {
	metrics := ComputeShiftMetrics(ShiftInput{
		Hours:           -8,
		CycleSeconds:    -30,
		DowntimeMinutes: -10,
		TotalProduced:   -500,
		Scrap:           -20,
	})

	if metrics != (ShiftMetrics{}) {
		t.Errorf("Expected all-zero metrics for negative inputs, got %+v", metrics)
	}
}

func TestComputeShiftMetrics_ScrapAboveTotal(t *testing.T) {
	metrics := ComputeShiftMetrics(ShiftInput{
		Hours:         8,
		CycleSeconds:  30,
		TotalProduced: 100,
		Scrap:         150,
	})

	if metrics.GoodUnits != 0 {
		t.Errorf("Expected good units floored at 0, got %d", metrics.GoodUnits)
	}
	if metrics.Quality != 0 {
		t.Errorf("Expected zero quality, got %v", metrics.Quality)
	}
}

func TestComputeShiftMetrics_QualityInRange(t *testing.T) {
	for scrap := entities.Quantity(0); scrap <= 200; scrap += 50 {
		metrics := ComputeShiftMetrics(ShiftInput{
			Hours:         8,
			CycleSeconds:  30,
			TotalProduced: 200,
			Scrap:         scrap,
		})

		if metrics.GoodUnits != 200-scrap {
			t.Errorf("scrap=%d: expected good %d, got %d", scrap, 200-scrap, metrics.GoodUnits)
		}
		if metrics.Quality < 0 || metrics.Quality > 1 {
			t.Errorf("scrap=%d: quality out of range: %v", scrap, metrics.Quality)
		}
	}
}
