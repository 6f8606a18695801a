package memory

import (
	"fmt"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
	"github.com/moldworks/moldtrack/pkg/domain/repositories"
)

// CatalogRepository provides in-memory machine and mold-recipe storage
type CatalogRepository struct {
	machines []entities.Machine
	recipes  map[entities.MoldID]entities.MoldRecipe
	moldSeq  []entities.MoldID
}

// NewCatalogRepository creates a new in-memory catalog repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		recipes: make(map[entities.MoldID]entities.MoldRecipe),
	}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// LoadMachines loads machines into the repository
func (r *CatalogRepository) LoadMachines(machines []*entities.Machine) error {
	for _, machine := range machines {
		r.machines = append(r.machines, *machine)
	}
	return nil
}

// LoadRecipes loads mold recipes into the repository
func (r *CatalogRepository) LoadRecipes(recipes []*entities.MoldRecipe) error {
	for _, recipe := range recipes {
		if _, exists := r.recipes[recipe.MoldID]; !exists {
			r.moldSeq = append(r.moldSeq, recipe.MoldID)
		}
		r.recipes[recipe.MoldID] = *recipe
	}
	return nil
}

// GetMachines returns the machine list
func (r *CatalogRepository) GetMachines() ([]entities.Machine, error) {
	machines := make([]entities.Machine, len(r.machines))
	copy(machines, r.machines)
	return machines, nil
}

// GetRecipes returns every mold recipe in load order
func (r *CatalogRepository) GetRecipes() ([]entities.MoldRecipe, error) {
	recipes := make([]entities.MoldRecipe, 0, len(r.recipes))
	for _, moldID := range r.moldSeq {
		recipes = append(recipes, r.recipes[moldID])
	}
	return recipes, nil
}

// GetRecipe returns the recipe for a mold
func (r *CatalogRepository) GetRecipe(moldID entities.MoldID) (*entities.MoldRecipe, error) {
	recipe, exists := r.recipes[moldID]
	if !exists {
		return nil, fmt.Errorf("recipe not found for mold: %s", moldID)
	}
	return &recipe, nil
}
