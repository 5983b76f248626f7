package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"videohub/catalog-api/internal/catalog"
	"videohub/catalog-api/internal/youtube"
	"videohub/catalog-api/utils"
)

// placeholderThumbnail is shown for videos whose URL does not resolve to a
// known source. Same placeholder the catalog seeds non-YouTube entries with.
const placeholderThumbnail = "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?auto=format&fit=crop&q=80"

// TranslationPayload is one language's editable fields in a video payload.
type TranslationPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VideoPayload is the draft a client submits when creating or updating a
// video. Duration must already be in display form - raw ISO-8601 strings are
// rejected rather than persisted.
type VideoPayload struct {
	VideoURL     string                        `json:"video_url" validate:"required,url"`
	Thumbnail    string                        `json:"thumbnail"`
	Duration     string                        `json:"duration"`
	Author       string                        `json:"author"`
	CategoryID   *uuid.UUID                    `json:"category_id,omitempty"`
	IsFeatured   bool                          `json:"is_featured"`
	Translations map[string]TranslationPayload `json:"translations"`
}

// displayDurationPattern matches "H:MM:SS" / "M:SS" display durations.
var displayDurationPattern = regexp.MustCompile(`^\d+:[0-5]\d(:[0-5]\d)?$`)

// validatePayload runs struct validation plus the duration-form check: only
// display durations are ever persisted, never raw ISO-8601 strings.
func (p *VideoPayload) validatePayload() []string {
	var problems []string
	if err := validate.Struct(p); err != nil {
		problems = utils.FormatValidationErrors(err)
	}
	if p.Duration != "" && !displayDurationPattern.MatchString(p.Duration) {
		problems = append(problems, "Field 'duration' must be a display duration like 2:15:30 or 1:22")
	}
	return problems
}

func (p *VideoPayload) applyTo(session *catalog.EditSession) {
	session.Draft.VideoURL = p.VideoURL
	session.Draft.Thumbnail = p.Thumbnail
	session.Draft.Duration = p.Duration
	session.Draft.Author = p.Author
	session.Draft.CategoryID = p.CategoryID
	session.Draft.IsFeatured = p.IsFeatured

	for lang, t := range p.Translations {
		draft := session.Translation(catalog.Language(lang))
		if draft == nil {
			continue // unsupported language codes are ignored, not stored
		}
		draft.Title = utils.SanitizeInput(t.Title)
		draft.Description = utils.SanitizeInput(t.Description)
	}
}

// CreateVideo handles creating a new video with its translations. One create
// call for the video row, then one upsert per supported language, all driven
// by the submission plan.
func (h *ApplicationHandler) CreateVideo(c *fiber.Ctx) error {
	payload := new(VideoPayload)
	if err := c.BodyParser(payload); err != nil {
		h.Logger.Errorf("Error parsing create video payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": fmt.Sprintf("Invalid request body: %v", err),
		})
	}
	if problems := payload.validatePayload(); len(problems) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  problems,
		})
	}

	session := catalog.NewEditSession()
	payload.applyTo(session)

	videoID, err := h.Submitter.Submit(c.Context(), session)
	if err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	h.Logger.Infof("Created video %s", videoID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"video_id": videoID},
	})
}

// UpdateVideo handles editing an existing video. The session is hydrated from
// the persisted record first, so translations for languages absent from the
// payload keep their stored values and missing rows still get upserted.
func (h *ApplicationHandler) UpdateVideo(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	payload := new(VideoPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": fmt.Sprintf("Invalid request body: %v", err),
		})
	}
	if problems := payload.validatePayload(); len(problems) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  problems,
		})
	}

	session, err := catalog.LoadEditSession(c.Context(), h.Store, videoID)
	if err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}
	payload.applyTo(session)

	if _, err := h.Submitter.Submit(c.Context(), session); err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	h.Logger.Infof("Updated video %s", videoID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"video_id": videoID},
	})
}

// DeleteVideo soft-deletes a video. The row keeps its translations, comments
// and reactions but disappears from every listing.
func (h *ApplicationHandler) DeleteVideo(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	if err := h.Store.SoftDeleteVideo(c.Context(), videoID); err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	h.Logger.Infof("Soft-deleted video %s", videoID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"video_id": videoID},
	})
}

// SetFeatured marks one video as the featured item. At most one video is
// featured at a time: the previous holder's flag is cleared first.
func (h *ApplicationHandler) SetFeatured(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	_, _, err = h.DB.From("videos").
		Update(map[string]interface{}{"is_featured": false, "updated_at": time.Now()}, "", "").
		Eq("is_featured", "true").
		Execute()
	if err != nil {
		h.Logger.Errorf("Error clearing featured flags: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update featured video"})
	}

	_, count, err := h.DB.From("videos").
		Update(map[string]interface{}{"is_featured": true, "updated_at": time.Now()}, "", "exact").
		Eq("id", videoID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error setting featured flag for video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update featured video"})
	}
	if count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Video not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"video_id": videoID, "is_featured": true},
	})
}

// ResolveMetadataRequest carries the URL the admin pasted into the edit form.
type ResolveMetadataRequest struct {
	VideoURL string `json:"video_url" validate:"required"`
}

// ResolveMetadata classifies a video URL and, for YouTube sources, resolves
// title, description, author, duration and thumbnail. Unrecognized sources
// are not an error: the client gets a placeholder thumbnail and empty
// metadata to fall back on.
func (h *ApplicationHandler) ResolveMetadata(c *fiber.Ctx) error {
	payload := new(ResolveMetadataRequest)
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

	classification := youtube.Classify(payload.VideoURL)
	if classification.Source != youtube.SourceYouTube {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "success",
			"data": fiber.Map{
				"source":   classification.Source,
				"metadata": youtube.Metadata{ThumbnailURL: placeholderThumbnail},
			},
		})
	}

	meta, err := h.YouTube.FetchMetadata(c.Context(), classification.VideoID)
	if err != nil {
		if errors.Is(err, youtube.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  "error",
				"message": "No video found for this URL",
			})
		}
		h.Logger.Errorf("Metadata resolution failed for %s: %v", classification.VideoID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Metadata lookup failed, try again later",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"source":   classification.Source,
			"video_id": classification.VideoID,
			"metadata": meta,
		},
	})
}
