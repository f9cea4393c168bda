package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/Youssef23122003/food-app-api/internal/apperrors"
	"github.com/Youssef23122003/food-app-api/internal/models"
	"github.com/Youssef23122003/food-app-api/internal/repositories"
	"github.com/Youssef23122003/food-app-api/pkg/rabbitmq"
)

// RecipeService handles business logic related to recipes: category
// existence checks on writes, the owner-or-SuperAdmin gate on mutation, and
// lifecycle event publication.
type RecipeService struct {
	recipeRepo   repositories.RecipeRepository
	categoryRepo repositories.CategoryRepository
	mqClient     *rabbitmq.Client
}

// NewRecipeService creates a new RecipeService. mqClient may be nil, in
// which case event publication is skipped.
func NewRecipeService(recipeRepo repositories.RecipeRepository, categoryRepo repositories.CategoryRepository, mqClient *rabbitmq.Client) *RecipeService {
	return &RecipeService{
		recipeRepo:   recipeRepo,
		categoryRepo: categoryRepo,
		mqClient:     mqClient,
	}
}

// CreateRecipe creates a new recipe bound to the calling user. The
// referenced category must exist.
func (s *RecipeService) CreateRecipe(recipe *models.Recipe, creatorID string) (*models.Recipe, error) {
	if _, err := s.categoryRepo.GetByID(recipe.CategoryID); err != nil {
		return nil, fmt.Errorf("category '%s' does not exist: %w", recipe.CategoryID, apperrors.ErrValidation)
	}

	recipe.CreatedByID = creatorID
	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}

	s.publishEvent("recipe.created", recipe)

	// Reload to expand category and creator in the response.
	return s.recipeRepo.GetByID(recipe.ID)
}

// ListRecipes retrieves one page of recipes matching the filter along with
// the total page count for the given page size.
func (s *RecipeService) ListRecipes(filter repositories.RecipeFilter, pageSize, pageNumber int) ([]models.Recipe, int, error) {
	offset := (pageNumber - 1) * pageSize
	recipes, err := s.recipeRepo.List(filter, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.recipeRepo.Count(filter)
	if err != nil {
		return nil, 0, err
	}
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return recipes, totalPages, nil
}

// GetRecipeByID retrieves a single recipe with its category and creator
// expanded.
func (s *RecipeService) GetRecipeByID(id string) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(id)
}

// UpdateRecipe updates an existing recipe. Only the creator or a SuperAdmin
// may update; the stored image path is preserved when the update carries no
// new image, and the creator binding never changes.
func (s *RecipeService) UpdateRecipe(id string, updated *models.Recipe, callerID string, callerRole models.Role) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if recipe.CreatedByID != callerID && !callerRole.IsSuperAdmin() {
		return nil, fmt.Errorf("recipe %s: %w", id, apperrors.ErrAuthorization)
	}

	if updated.CategoryID != recipe.CategoryID {
		if _, err := s.categoryRepo.GetByID(updated.CategoryID); err != nil {
			return nil, fmt.Errorf("category '%s' does not exist: %w", updated.CategoryID, apperrors.ErrValidation)
		}
	}

	recipe.Name = updated.Name
	recipe.Description = updated.Description
	recipe.Price = updated.Price
	recipe.CategoryID = updated.CategoryID
	recipe.Tag = updated.Tag
	if updated.ImagePath != "" {
		recipe.ImagePath = updated.ImagePath
	}

	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}

	s.publishEvent("recipe.updated", recipe)

	return s.recipeRepo.GetByID(id)
}

// DeleteRecipe deletes an existing recipe. Only the creator or a SuperAdmin
// may delete.
func (s *RecipeService) DeleteRecipe(id string, callerID string, callerRole models.Role) error {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return err
	}

	if recipe.CreatedByID != callerID && !callerRole.IsSuperAdmin() {
		return fmt.Errorf("recipe %s: %w", id, apperrors.ErrAuthorization)
	}

	if err := s.recipeRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("recipe.deleted", recipe)
	return nil
}

// publishEvent sends a recipe lifecycle event to the queue. Publication is
// best-effort: failures are logged and never fail the request.
func (s *RecipeService) publishEvent(routingKey string, recipe *models.Recipe) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"recipeID":  recipe.ID,
		"name":      recipe.Name,
		"category":  recipe.CategoryID,
		"createdBy": recipe.CreatedByID,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}

	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for recipe %s: %v", routingKey, recipe.ID, err)
	}
}
