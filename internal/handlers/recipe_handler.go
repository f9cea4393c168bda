package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Youssef23122003/food-app-api/internal/middleware"
	"github.com/Youssef23122003/food-app-api/internal/models"
	"github.com/Youssef23122003/food-app-api/internal/repositories"
	"github.com/Youssef23122003/food-app-api/internal/services"
)

// RecipeHandler handles HTTP requests for recipes, including the optional
// multipart image attachment on create and update.
type RecipeHandler struct {
	service   *services.RecipeService
	validate  *validator.Validate
	uploadDir string
}

// NewRecipeHandler creates a new RecipeHandler. Uploaded images are stored
// under uploadDir and referenced by path.
func NewRecipeHandler(service *services.RecipeService, uploadDir string) *RecipeHandler {
	return &RecipeHandler{
		service:   service,
		validate:  newValidator(),
		uploadDir: uploadDir,
	}
}

// RegisterRoutes registers the recipe routes. All require authentication;
// the owner-or-SuperAdmin check on update and delete lives in the service.
func (h *RecipeHandler) RegisterRoutes(router fiber.Router) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Get("/", h.HandleList)
	recipeRoutes.Get("/:id", h.HandleGetByID)
	recipeRoutes.Post("/", h.HandleCreate)
	recipeRoutes.Put("/:id", h.HandleUpdate)
	recipeRoutes.Delete("/:id", h.HandleDelete)
}

// RecipeRequest represents the request body for recipe writes. It binds
// from JSON as well as multipart form fields.
type RecipeRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" form:"description" validate:"required,max=2000"`
	Price       float64 `json:"price" form:"price" validate:"required,gt=0"`
	Category    string  `json:"category" form:"category" validate:"required"`
	Tag         string  `json:"tag" form:"tag" validate:"required,oneof=Breakfast Lunch Dinner Dessert"`
}

// saveImage stores the multipart "image" file, if present, and returns the
// recorded path. Requests without an image attachment return an empty path.
func (h *RecipeHandler) saveImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// Not a multipart request or no image field attached.
		return "", nil
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return dst, nil
}

// parseRequest binds and validates the recipe payload.
func (h *RecipeHandler) parseRequest(c *fiber.Ctx) (*RecipeRequest, error) {
	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, err
	}
	return &req, nil
}

// HandleCreate creates a new recipe bound to the calling user.
func (h *RecipeHandler) HandleCreate(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		log.Printf("Error parsing recipe request: %v", err)
		return respondValidationErrors(c, err)
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		log.Printf("Error saving recipe image: %v", err)
		return respondError(c, err)
	}

	recipe := models.Recipe{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.Category,
		Tag:         models.Tag(req.Tag),
		ImagePath:   imagePath,
	}

	created, err := h.service.CreateRecipe(&recipe, middleware.CallerID(c))
	if err != nil {
		log.Printf("Error creating recipe: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleList returns one page of recipes matching the optional name, tag
// and category filters, in the pagination envelope.
func (h *RecipeHandler) HandleList(c *fiber.Ctx) error {
	pageSize, pageNumber := pageParams(c)
	filter := repositories.RecipeFilter{
		Name:       c.Query("name"),
		Tag:        c.Query("tag"),
		CategoryID: c.Query("category"),
	}

	recipes, totalPages, err := h.service.ListRecipes(filter, pageSize, pageNumber)
	if err != nil {
		log.Printf("Error listing recipes: %v", err)
		return respondError(c, err)
	}

	return c.JSON(pagedResponse{
		Data:               recipes,
		PageSize:           pageSize,
		PageNumber:         pageNumber,
		TotalNumberOfPages: totalPages,
	})
}

// HandleGetByID returns a single recipe with its category and creator
// expanded.
func (h *RecipeHandler) HandleGetByID(c *fiber.Ctx) error {
	recipe, err := h.service.GetRecipeByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipe)
}

// HandleUpdate updates an existing recipe. When no new image is attached,
// the stored image path is preserved.
func (h *RecipeHandler) HandleUpdate(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		log.Printf("Error parsing recipe request: %v", err)
		return respondValidationErrors(c, err)
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		log.Printf("Error saving recipe image: %v", err)
		return respondError(c, err)
	}

	updated, err := h.service.UpdateRecipe(c.Params("id"), &models.Recipe{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.Category,
		Tag:         models.Tag(req.Tag),
		ImagePath:   imagePath,
	}, middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		log.Printf("Error updating recipe %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(updated)
}

// HandleDelete deletes a recipe.
func (h *RecipeHandler) HandleDelete(c *fiber.Ctx) error {
	err := h.service.DeleteRecipe(c.Params("id"), middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		log.Printf("Error deleting recipe %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Recipe deleted successfully",
	})
}
