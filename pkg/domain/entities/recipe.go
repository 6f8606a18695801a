package entities

import (
	"fmt"
)

// MoldRecipe represents reference machine-parameter data for a mold.
// Recipes are consumed, never mutated, by the computation layer.
type MoldRecipe struct {
	MoldID           MoldID
	PartID           PartID
	CycleSeconds     float64
	TotalCavities    int
	EnabledCavities  int
	ExpectedScrapPct float64
	Active           bool
}

// NewMoldRecipe creates a validated MoldRecipe
func NewMoldRecipe(moldID MoldID, partID PartID, cycleSeconds float64, totalCavities, enabledCavities int, expectedScrapPct float64, active bool) (*MoldRecipe, error) {
	if string(moldID) == "" {
		return nil, fmt.Errorf("mold id cannot be empty")
	}
	if totalCavities < 0 {
		return nil, fmt.Errorf("total cavities cannot be negative, got %d", totalCavities)
	}
	if enabledCavities > totalCavities {
		return nil, fmt.Errorf("enabled cavities %d cannot exceed total cavities %d", enabledCavities, totalCavities)
	}

	return &MoldRecipe{
		MoldID:           moldID,
		PartID:           partID,
		CycleSeconds:     cycleSeconds,
		TotalCavities:    totalCavities,
		EnabledCavities:  enabledCavities,
		ExpectedScrapPct: expectedScrapPct,
		Active:           active,
	}, nil
}
