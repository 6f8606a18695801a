package repositories

import "github.com/moldworks/moldtrack/pkg/domain/entities"

// CatalogRepository provides access to the machine and mold-recipe
// reference data
type CatalogRepository interface {
	GetMachines() ([]entities.Machine, error)
	GetRecipes() ([]entities.MoldRecipe, error)
	GetRecipe(moldID entities.MoldID) (*entities.MoldRecipe, error)
	LoadMachines(machines []*entities.Machine) error
	LoadRecipes(recipes []*entities.MoldRecipe) error
}
