package production

import (
	"math"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
)

// EstimateOrderSchedule estimates the run time for an order from its mold
// recipe. Order-level cycle and enabled-cavity overrides win over the
// recipe values; a non-positive cavity count falls back to one so the
// shot count stays defined.
func EstimateOrderSchedule(order entities.Order, recipe *entities.MoldRecipe) ScheduleEstimate {
	cycle := order.CycleOverride
	cavities := order.CavityOverride
	if recipe != nil {
		if cycle <= 0 {
			cycle = recipe.CycleSeconds
		}
		if cavities <= 0 {
			cavities = recipe.EnabledCavities
		}
	}
	cycle = coerceFloat(cycle)
	if cavities <= 0 {
		cavities = 1
	}

	target := coerceQty(order.TargetQty)
	shots := entities.Quantity(math.Ceil(float64(target) / float64(cavities)))
	runMinutes := float64(shots) * cycle / 60

	return ScheduleEstimate{
		CycleSeconds: cycle,
		Cavities:     cavities,
		Shots:        shots,
		RunMinutes:   round2(runMinutes),
		TotalMinutes: round2(runMinutes + coerceFloat(order.SetupMinutes)),
	}
}
