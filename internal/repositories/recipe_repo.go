package repositories

import "github.com/Youssef23122003/food-app-api/internal/models"

// RecipeFilter narrows recipe listings. Zero-value fields are ignored; set
// fields are combined conjunctively. Name matches as a case-insensitive
// substring, Tag and CategoryID match exactly.
type RecipeFilter struct {
	Name       string
	Tag        string
	CategoryID string
}

// RecipeRepository defines the interface for recipe data access. GetByID and
// List return recipes with their Category and CreatedBy references expanded.
type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	List(filter RecipeFilter, offset, limit int) ([]models.Recipe, error)
	Count(filter RecipeFilter) (int64, error)
	GetByID(id string) (*models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id string) error
}
