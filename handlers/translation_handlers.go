package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"videohub/catalog-api/internal/catalog"
	"videohub/catalog-api/utils"
)

// GetVideoTranslations returns all translation rows for a video.
func (h *ApplicationHandler) GetVideoTranslations(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	translations, err := h.Store.GetTranslations(c.Context(), videoID)
	if err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   translations,
	})
}

// UpsertTranslationRequest carries one language's fields for a direct upsert.
type UpsertTranslationRequest struct {
	Language    string `json:"language" validate:"required,oneof=en ar"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// UpsertVideoTranslation writes one translation row keyed by
// (video_id, language). Repeating the call updates in place.
func (h *ApplicationHandler) UpsertVideoTranslation(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	payload := new(UpsertTranslationRequest)
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

	// The video must exist (and not be soft-deleted) before taking rows.
	if _, err := h.Store.GetVideo(c.Context(), videoID); err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	draft := catalog.TranslationDraft{
		Title:       utils.SanitizeInput(payload.Title),
		Description: utils.SanitizeInput(payload.Description),
	}
	if err := h.Store.UpsertTranslation(c.Context(), videoID, payload.Language, draft); err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"video_id": videoID, "language": payload.Language},
	})
}

// fieldStatus is the per-field outcome of a translation pass.
type fieldStatus struct {
	Field  string `json:"field"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// TranslateVideo runs the on-demand translation pass for a video: each
// non-empty English field is sent to the translation function and written
// into the Arabic draft, then the Arabic row is upserted. Field failures are
// independent and reported individually; a failed description does not undo
// a translated title.
func (h *ApplicationHandler) TranslateVideo(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	session, err := catalog.LoadEditSession(c.Context(), h.Store, videoID)
	if err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	results := catalog.TranslateDrafts(c.Context(), h.Translator, session, catalog.LanguageEnglish, catalog.LanguageArabic)
	if len(results) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Nothing to translate: the English title and description are empty",
		})
	}

	statuses := make([]fieldStatus, 0, len(results))
	succeeded := 0
	for _, r := range results {
		s := fieldStatus{Field: r.Field, Status: "translated"}
		if r.Err != nil {
			s.Status = "failed"
			s.Error = r.Err.Error()
		} else {
			succeeded++
		}
		statuses = append(statuses, s)
	}

	if succeeded == 0 {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Translation failed for every field",
			"data":    fiber.Map{"fields": statuses},
		})
	}

	// Persist what did translate; the untranslated field keeps its old value.
	target := session.Translation(catalog.LanguageArabic)
	if err := h.Store.UpsertTranslation(c.Context(), videoID, string(catalog.LanguageArabic), *target); err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	h.Logger.Infof("Translated %d/%d fields for video %s", succeeded, len(results), videoID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"video_id":    videoID,
			"fields":      statuses,
			"translation": target,
		},
	})
}
