package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	postgrest "github.com/supabase-community/postgrest-go"

	"videohub/catalog-api/models"
	"videohub/catalog-api/utils"
)

// ListCategories returns all categories ordered by name.
func (h *ApplicationHandler) ListCategories(c *fiber.Ctx) error {
	body, _, err := h.DB.From("categories").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error fetching categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not retrieve categories"})
	}

	var categories []models.Category
	if err := json.Unmarshal(body, &categories); err != nil {
		h.Logger.Errorf("Error unmarshalling categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not process categories"})
	}
	if categories == nil {
		categories = []models.Category{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   categories,
	})
}

// CategoryPayload defines the JSON body for creating or updating a category.
type CategoryPayload struct {
	Name   string  `json:"name" validate:"required"`
	NameAr *string `json:"name_ar,omitempty"`
}

// CreateCategory adds a new category.
func (h *ApplicationHandler) CreateCategory(c *fiber.Ctx) error {
	payload := new(CategoryPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": fmt.Sprintf("Invalid request body: %v", err),
		})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
	}

	row := map[string]interface{}{"name": utils.SanitizeInput(payload.Name)}
	if payload.NameAr != nil {
		row["name_ar"] = utils.SanitizeInput(*payload.NameAr)
	}

	body, _, err := h.DB.From("categories").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not create category"})
	}

	var created []models.Category
	if err := json.Unmarshal(body, &created); err != nil || len(created) == 0 {
		h.Logger.Errorf("Unexpected response creating category: %v, body: %s", err, string(body))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to confirm category creation"})
	}

	h.Logger.Infof("Created category %s", created[0].ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   created[0],
	})
}

// UpdateCategory renames a category.
func (h *ApplicationHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid category ID format"})
	}

	payload := new(CategoryPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
	}

	updates := map[string]interface{}{"name": utils.SanitizeInput(payload.Name)}
	if payload.NameAr != nil {
		updates["name_ar"] = utils.SanitizeInput(*payload.NameAr)
	}

	_, count, err := h.DB.From("categories").
		Update(updates, "", "exact").
		Eq("id", categoryID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error updating category %s: %v", categoryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not update category"})
	}
	if count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Category not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"category_id": categoryID},
	})
}

// DeleteCategory removes a category. Videos keep a dangling category_id of
// null via the FK's ON DELETE SET NULL.
func (h *ApplicationHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid category ID format"})
	}

	_, count, err := h.DB.From("categories").
		Delete("", "exact").
		Eq("id", categoryID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error deleting category %s: %v", categoryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not delete category"})
	}
	if count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Category not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"category_id": categoryID},
	})
}
