package production

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

// ComputeShiftMetrics converts one shift's raw counts into the standard
// Availability/Performance/Quality/OEE metrics. Negative inputs are
// coerced to zero rather than rejected, preserving the lenient parsing
// policy of the flat record stores feeding this computation.
func ComputeShiftMetrics(in ShiftInput) ShiftMetrics {
	hours := coerceFloat(in.Hours)
	cycle := coerceFloat(in.CycleSeconds)
	downtimeSeconds := coerceFloat(in.DowntimeMinutes) * 60
	total := coerceQty(in.TotalProduced)
	scrap := coerceQty(in.Scrap)

	shiftSeconds := hours * 3600
	operativeSeconds := shiftSeconds - downtimeSeconds
	if operativeSeconds < 0 {
		operativeSeconds = 0
	}

	var plannedTarget, operativeTarget entities.Quantity
	if cycle > 0 {
		plannedTarget = entities.Quantity(math.Floor(shiftSeconds / cycle))
		operativeTarget = entities.Quantity(math.Floor(operativeSeconds / cycle))
	}

	good := total - scrap
	if good < 0 {
		good = 0
	}

	var availability, performance, quality float64
	if shiftSeconds > 0 {
		availability = clamp01(operativeSeconds / shiftSeconds)
	}
	if operativeSeconds > 0 {
		performance = clamp01(float64(good) * cycle / operativeSeconds)
	}
	if total > 0 {
		quality = float64(good) / float64(total)
	}
	oee := availability * performance * quality * 100

	return ShiftMetrics{
		PlannedTarget:   plannedTarget,
		OperativeTarget: operativeTarget,
		GoodUnits:       good,
		Availability:    round2(availability),
		Performance:     round2(performance),
		Quality:         round2(quality),
		OEE:             round2(oee),
	}
}

func coerceFloat(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func coerceQty(v entities.Quantity) entities.Quantity {
	if v < 0 {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// round2 rounds a reported percentage to two decimal places
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
