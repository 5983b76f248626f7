package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"videohub/catalog-api/models"
	"videohub/catalog-api/utils"
)

// ListReactions returns reaction counts per type for a video, plus which of
// them the requesting user (optional user query param) has active.
func (h *ApplicationHandler) ListReactions(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	body, _, err := h.DB.From("reactions").
		Select("*", "", false).
		Eq("video_id", videoID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error fetching reactions for video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not retrieve reactions"})
	}

	var reactions []models.Reaction
	if err := json.Unmarshal(body, &reactions); err != nil {
		h.Logger.Errorf("Error unmarshalling reactions for video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not process reactions"})
	}

	userFilter := c.Query("user")
	counts := make(map[string]int)
	active := make(map[string]bool)
	for _, r := range reactions {
		counts[r.Type]++
		if userFilter != "" && r.UserID.String() == userFilter {
			active[r.Type] = true
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"video_id": videoID, "counts": counts, "active": active},
	})
}

// ToggleReactionPayload defines the JSON body for toggling a reaction.
type ToggleReactionPayload struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Type   string `json:"type" validate:"required"`
}

// ToggleReaction flips one user's reaction of a given type on a video:
// absent -> present, present -> absent.
func (h *ApplicationHandler) ToggleReaction(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	payload := new(ToggleReactionPayload)
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
	if !models.ValidReactionType(payload.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Unknown reaction type '%s'", payload.Type)})
	}

	if _, err := h.Store.GetVideo(c.Context(), videoID); err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	// Look for an existing reaction of this type from this user.
	body, _, err := h.DB.From("reactions").
		Select("id", "", false).
		Eq("video_id", videoID.String()).
		Eq("user_id", payload.UserID).
		Eq("type", payload.Type).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error checking reaction state for video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not toggle reaction"})
	}

	var existing []models.Reaction
	if err := json.Unmarshal(body, &existing); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not toggle reaction"})
	}

	if len(existing) > 0 {
		_, _, err := h.DB.From("reactions").
			Delete("", "").
			Eq("id", existing[0].ID.String()).
			Execute()
		if err != nil {
			h.Logger.Errorf("Error removing reaction %s: %v", existing[0].ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not toggle reaction"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "success",
			"data":   fiber.Map{"video_id": videoID, "type": payload.Type, "active": false},
		})
	}

	row := map[string]interface{}{
		"video_id": videoID.String(),
		"user_id":  payload.UserID,
		"type":     payload.Type,
	}
	_, _, err = h.DB.From("reactions").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error adding reaction on video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not toggle reaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"video_id": videoID, "type": payload.Type, "active": true},
	})
}
