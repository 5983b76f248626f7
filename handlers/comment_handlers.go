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

// ListComments returns the comments on a video, newest first.
func (h *ApplicationHandler) ListComments(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	body, _, err := h.DB.From("comments").
		Select("*", "", false).
		Eq("video_id", videoID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error fetching comments for video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not retrieve comments"})
	}

	var comments []models.Comment
	if err := json.Unmarshal(body, &comments); err != nil {
		h.Logger.Errorf("Error unmarshalling comments for video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not process comments"})
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   comments,
	})
}

// CreateCommentPayload defines the JSON body for posting a comment.
type CreateCommentPayload struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	Author  string `json:"author" validate:"required"`
	Content string `json:"content" validate:"required,max=2000"`
}

// CreateComment adds a comment to a video.
func (h *ApplicationHandler) CreateComment(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	payload := new(CreateCommentPayload)
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

	// Comments only attach to live videos.
	if _, err := h.Store.GetVideo(c.Context(), videoID); err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	row := map[string]interface{}{
		"video_id": videoID.String(),
		"user_id":  payload.UserID,
		"author":   utils.SanitizeInput(payload.Author),
		"content":  utils.SanitizeInput(payload.Content),
		"likes":    0,
	}

	body, _, err := h.DB.From("comments").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error creating comment on video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not create comment"})
	}

	var created []models.Comment
	if err := json.Unmarshal(body, &created); err != nil || len(created) == 0 {
		h.Logger.Errorf("Unexpected response creating comment: %v, body: %s", err, string(body))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to confirm comment creation"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   created[0],
	})
}
