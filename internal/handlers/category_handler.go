package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Youssef23122003/food-app-api/internal/middleware"
	"github.com/Youssef23122003/food-app-api/internal/models"
	"github.com/Youssef23122003/food-app-api/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the category routes. Reads require any
// authenticated caller; writes are SuperAdmin only.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleList)
	categoryRoutes.Get("/:id", h.HandleGetByID)
	categoryRoutes.Post("/", middleware.SuperAdminRequired(), h.HandleCreate)
	categoryRoutes.Put("/:id", middleware.SuperAdminRequired(), h.HandleUpdate)
	categoryRoutes.Delete("/:id", middleware.SuperAdminRequired(), h.HandleDelete)
}

// CategoryRequest represents the request body for category writes.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.service.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleList returns one page of categories in the pagination envelope.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	pageSize, pageNumber := pageParams(c)

	categories, totalPages, err := h.service.ListCategories(pageSize, pageNumber)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return respondError(c, err)
	}

	return c.JSON(pagedResponse{
		Data:               categories,
		PageSize:           pageSize,
		PageNumber:         pageNumber,
		TotalNumberOfPages: totalPages,
	})
}

// HandleGetByID returns a single category.
func (h *CategoryHandler) HandleGetByID(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// HandleUpdate updates an existing category.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	category, err := h.service.UpdateCategory(c.Params("id"), &models.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("Error updating category %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(category)
}

// HandleDelete deletes a category.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		log.Printf("Error deleting category %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
