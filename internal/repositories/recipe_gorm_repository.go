package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Youssef23122003/food-app-api/internal/apperrors"
	"github.com/Youssef23122003/food-app-api/internal/models"
)

// GORMRecipeRepository is a GORM implementation of RecipeRepository.
type GORMRecipeRepository struct {
	db *gorm.DB
}

// NewGORMRecipeRepository creates a new instance of GORMRecipeRepository.
func NewGORMRecipeRepository(db *gorm.DB) *GORMRecipeRepository {
	return &GORMRecipeRepository{
		db: db,
	}
}

// filtered applies the conjunctive recipe filters to a query. The name match
// is lowered on both sides so it behaves the same on PostgreSQL and SQLite.
func (r *GORMRecipeRepository) filtered(filter RecipeFilter) *gorm.DB {
	query := r.db.Model(&models.Recipe{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Tag != "" {
		query = query.Where("tag = ?", filter.Tag)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	return query
}

// Create creates a new recipe in the database.
func (r *GORMRecipeRepository) Create(recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if err := r.db.Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

// List retrieves a page of recipes matching the filter, with category and
// creator expanded.
func (r *GORMRecipeRepository) List(filter RecipeFilter, offset, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.filtered(filter).
		Preload("Category").
		Preload("CreatedBy").
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Count returns the number of recipes matching the filter.
func (r *GORMRecipeRepository) Count(filter RecipeFilter) (int64, error) {
	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return total, nil
}

// GetByID retrieves a single recipe by its ID, with category and creator
// expanded.
func (r *GORMRecipeRepository) GetByID(id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Category").Preload("CreatedBy").First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recipe by ID %s: %w", id, err)
	}
	return &recipe, nil
}

// Update updates an existing recipe in the database.
func (r *GORMRecipeRepository) Update(recipe *models.Recipe) error {
	res := r.db.Omit("Category", "CreatedBy").Save(recipe)
	if res.Error != nil {
		return fmt.Errorf("failed to update recipe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("recipe with ID %s: %w", recipe.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a recipe by its ID from the database.
func (r *GORMRecipeRepository) Delete(id string) error {
	res := r.db.Delete(&models.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("recipe with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
