package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"videohub/catalog-api/internal/catalog"
	"videohub/catalog-api/models"
)

// TranslationView is the per-language slice of a video exposed to clients.
type TranslationView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VideoResponse is a video plus its translations keyed by language code.
type VideoResponse struct {
	models.Video
	Translations map[string]TranslationView `json:"translations"`
}

// ListVideos handles the request to list catalog videos. Supports optional
// category and featured filters; soft-deleted videos never appear.
func (h *ApplicationHandler) ListVideos(c *fiber.Ctx) error {
	var filter catalog.VideoFilter

	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid category ID format"})
		}
		filter.CategoryID = &categoryID
	}
	filter.FeaturedOnly = c.QueryBool("featured")

	videos, err := h.Store.ListVideos(c.Context(), filter)
	if err != nil {
		return h.respondStoreError(c, err, "Videos not found")
	}

	responses, err := h.attachTranslations(videos)
	if err != nil {
		h.Logger.Errorf("Error loading translations for video list: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load video translations"})
	}

	if lang := c.Query("lang"); lang != "" {
		for i := range responses {
			if view, ok := responses[i].Translations[lang]; ok {
				responses[i].Translations = map[string]TranslationView{lang: view}
			} else {
				responses[i].Translations = map[string]TranslationView{}
			}
		}
	}

	h.Logger.Infof("Successfully fetched %d videos", len(responses))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   responses,
	})
}

// GetFeaturedVideo returns the video currently flagged as featured.
func (h *ApplicationHandler) GetFeaturedVideo(c *fiber.Ctx) error {
	videos, err := h.Store.ListVideos(c.Context(), catalog.VideoFilter{FeaturedOnly: true})
	if err != nil {
		return h.respondStoreError(c, err, "Featured video not found")
	}
	if len(videos) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "No featured video"})
	}

	responses, err := h.attachTranslations(videos[:1])
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to load video translations"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   responses[0],
	})
}

// GetVideo returns one video with all of its translations.
func (h *ApplicationHandler) GetVideo(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	video, err := h.Store.GetVideo(c.Context(), videoID)
	if err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	translations, err := h.Store.GetTranslations(c.Context(), videoID)
	if err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	response := VideoResponse{Video: *video, Translations: make(map[string]TranslationView)}
	for _, t := range translations {
		view := TranslationView{Title: t.Title}
		if t.Description != nil {
			view.Description = *t.Description
		}
		response.Translations[t.Language] = view
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   response,
	})
}

// IncrementViews bumps a video's view counter.
func (h *ApplicationHandler) IncrementViews(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid video ID format"})
	}

	video, err := h.Store.GetVideo(c.Context(), videoID)
	if err != nil {
		return h.respondStoreError(c, err, "Video not found")
	}

	updates := map[string]interface{}{
		"views":      video.Views + 1,
		"updated_at": time.Now(),
	}
	_, count, err := h.DB.From("videos").
		Update(updates, "", "exact").
		Eq("id", videoID.String()).
		Execute()
	if err != nil {
		h.Logger.Errorf("Error incrementing views for video %s: %v", videoID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update view count"})
	}
	if count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Video not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"video_id": videoID, "views": video.Views + 1},
	})
}

// attachTranslations loads the translation rows for a set of videos in one
// query and groups them by video.
func (h *ApplicationHandler) attachTranslations(videos []models.Video) ([]VideoResponse, error) {
	responses := make([]VideoResponse, 0, len(videos))
	if len(videos) == 0 {
		return responses, nil
	}

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID.String())
	}

	body, _, err := h.DB.From("video_translations").
		Select("*", "", false).
		In("video_id", ids).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching translations: %w", err)
	}

	var rows []models.VideoTranslation
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("unmarshalling translations: %w", err)
	}

	byVideo := make(map[uuid.UUID]map[string]TranslationView)
	for _, row := range rows {
		if byVideo[row.VideoID] == nil {
			byVideo[row.VideoID] = make(map[string]TranslationView)
		}
		view := TranslationView{Title: row.Title}
		if row.Description != nil {
			view.Description = *row.Description
		}
		byVideo[row.VideoID][row.Language] = view
	}

	for _, v := range videos {
		translations := byVideo[v.ID]
		if translations == nil {
			translations = make(map[string]TranslationView)
		}
		responses = append(responses, VideoResponse{Video: v, Translations: translations})
	}
	return responses, nil
}
