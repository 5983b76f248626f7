package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"videohub/catalog-api/models"
	"videohub/catalog-api/utils"
)

// ListUserRoles returns the roles assigned to a user.
func (h *ApplicationHandler) ListUserRoles(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid user ID format"})
	}

	body, _, err := h.DB.From("user_roles").
		Select("*", "", false).
		Eq("user_id", userID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error fetching roles for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not retrieve roles"})
	}

	var roles []models.UserRole
	if err := json.Unmarshal(body, &roles); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not process roles"})
	}
	if roles == nil {
		roles = []models.UserRole{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   roles,
	})
}

// RolePayload defines the JSON body for role assignment and revocation.
type RolePayload struct {
	Role string `json:"role" validate:"required,oneof=admin"`
}

// AssignRole grants a role to a user. Upserts on (user_id, role), so
// repeating the call is harmless.
func (h *ApplicationHandler) AssignRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid user ID format"})
	}

	payload := new(RolePayload)
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

	row := map[string]interface{}{
		"user_id": userID.String(),
		"role":    payload.Role,
	}
	_, _, err = h.DB.From("user_roles").
		Insert(row, true, "user_id,role", "representation", "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error assigning role %s to user %s: %v", payload.Role, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not assign role"})
	}

	h.Logger.Infof("Assigned role %s to user %s", payload.Role, userID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"user_id": userID, "role": payload.Role},
	})
}

// RevokeRole removes a role from a user.
func (h *ApplicationHandler) RevokeRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid user ID format"})
	}

	role := c.Query("role", models.RoleAdmin)
	_, count, err := h.DB.From("user_roles").
		Delete("", "exact").
		Eq("user_id", userID.String()).
		Eq("role", role).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error revoking role %s from user %s: %v", role, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not revoke role"})
	}
	if count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Role assignment not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"user_id": userID, "role": role},
	})
}
