package services

import (
	"fmt"
	"math"

	"github.com/Youssef23122003/food-app-api/internal/apperrors"
	"github.com/Youssef23122003/food-app-api/internal/models"
	"github.com/Youssef23122003/food-app-api/internal/repositories"
)

// CategoryService handles business logic related to categories. Role checks
// for writes are enforced by the SuperAdmin route middleware.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// CreateCategory creates a new category. Names are unique.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if existing, err := s.repo.GetByName(category.Name); err == nil && existing != nil {
		return fmt.Errorf("category '%s': %w", category.Name, apperrors.ErrConflict)
	}
	return s.repo.Create(category)
}

// ListCategories retrieves one page of categories along with the total page
// count for the given page size.
func (s *CategoryService) ListCategories(pageSize, pageNumber int) ([]models.Category, int, error) {
	offset := (pageNumber - 1) * pageSize
	categories, err := s.repo.List(offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, 0, err
	}
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return categories, totalPages, nil
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// UpdateCategory updates the name and description of an existing category,
// re-checking name uniqueness when the name changes.
func (s *CategoryService) UpdateCategory(id string, updated *models.Category) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updated.Name != category.Name {
		if existing, err := s.repo.GetByName(updated.Name); err == nil && existing != nil {
			return nil, fmt.Errorf("category '%s': %w", updated.Name, apperrors.ErrConflict)
		}
	}

	category.Name = updated.Name
	category.Description = updated.Description
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category by its ID. Recipes referencing the
// category are left untouched; dangling references are an accepted gap.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}
