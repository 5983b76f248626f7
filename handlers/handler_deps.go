package handlers

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"

	"videohub/catalog-api/internal/catalog"
	"videohub/catalog-api/internal/youtube"
)

// MetadataFetcher defines what handlers expect from the YouTube metadata
// client. This allows for decoupling and easier testing.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, videoID string) (*youtube.Metadata, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Logger     *logrus.Logger
	DB         *supa.Client
	Store      catalog.Store
	Submitter  *catalog.Submitter
	YouTube    MetadataFetcher
	Translator catalog.Translator
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(logger *logrus.Logger, dbClient *supa.Client, store catalog.Store, youtubeClient MetadataFetcher, translator catalog.Translator) *ApplicationHandler {
	return &ApplicationHandler{
		Logger:     logger,
		DB:         dbClient,
		Store:      store,
		Submitter:  catalog.NewSubmitter(store, logger),
		YouTube:    youtubeClient,
		Translator: translator,
	}
}

var validate = validator.New()

// respondStoreError translates catalog errors to HTTP responses.
func (h *ApplicationHandler) respondStoreError(c *fiber.Ctx, err error, notFoundMessage string) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": notFoundMessage,
		})
	}
	if errors.Is(err, catalog.ErrSubmitInProgress) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "error",
			"message": "A submission for this video is already in progress",
		})
	}
	h.Logger.Errorf("Store operation failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": "Persistence operation failed",
	})
}
