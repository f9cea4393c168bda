package repositories

import "github.com/Youssef23122003/food-app-api/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(category *models.Category) error
	List(offset, limit int) ([]models.Category, error)
	Count() (int64, error)
	GetByID(id string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id string) error
}
