package models

import "time"

// Tag classifies a recipe by meal.
type Tag string

const (
	TagBreakfast Tag = "Breakfast"
	TagLunch     Tag = "Lunch"
	TagDinner    Tag = "Dinner"
	TagDessert   Tag = "Dessert"
)

// Recipe represents a single catalog entry. CategoryID must reference an
// existing category at write time; CreatedByID is bound to the creating user
// and never changes afterwards.
type Recipe struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Description string    `json:"description" gorm:"type:varchar(2000)" validate:"required,max=2000"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	ImagePath   string    `json:"imagePath,omitempty" gorm:"type:varchar(255)"`
	CategoryID  string    `json:"categoryId" gorm:"type:varchar(36);index" validate:"required"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tag         Tag       `json:"tag" gorm:"type:varchar(16)" validate:"required,oneof=Breakfast Lunch Dinner Dessert"`
	CreatedByID string    `json:"createdById" gorm:"type:varchar(36);index"`
	CreatedBy   *User     `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
