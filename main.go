package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"videohub/catalog-api/config"
	"videohub/catalog-api/handlers"
	"videohub/catalog-api/internal/store"
	"videohub/catalog-api/internal/translate"
	"videohub/catalog-api/internal/youtube"
	"videohub/catalog-api/middleware"
)

func main() {
	config.LoadEnv()
	config.InitLogger()

	if err := config.InitSupabase(); err != nil {
		log.Fatalf("Failed to initialize Supabase: %v", err)
	}

	youtubeClient := youtube.NewClient(config.GetYouTubeAPIKey(), config.Log)
	translateClient := translate.NewClient(config.GetTranslateFunctionURL(), config.GetSupabaseKey(), config.Log)
	catalogStore := store.NewSupabaseStore(config.SupabaseClient, config.Log)

	h := handlers.NewApplicationHandler(config.Log, config.SupabaseClient, catalogStore, youtubeClient, translateClient)

	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Allow all origins for development
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Metrics())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Catalog API is healthy",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API v1 routes
	apiV1 := app.Group("/api/v1")

	// Public video routes
	apiV1.Get("/videos", h.ListVideos)
	apiV1.Get("/videos/featured", h.GetFeaturedVideo)
	apiV1.Get("/videos/:id", h.GetVideo)
	apiV1.Post("/videos/:id/views", h.IncrementViews)
	apiV1.Get("/videos/:id/translations", h.GetVideoTranslations)

	// Comments and reactions
	apiV1.Get("/videos/:id/comments", h.ListComments)
	apiV1.Post("/videos/:id/comments", h.CreateComment)
	apiV1.Get("/videos/:id/reactions", h.ListReactions)
	apiV1.Post("/videos/:id/reactions", h.ToggleReaction)

	// Categories
	apiV1.Get("/categories", h.ListCategories)

	// Admin routes
	admin := apiV1.Group("/admin", middleware.AdminOnly(config.SupabaseClient, config.GetJWTSecret(), config.Log))

	admin.Post("/videos", h.CreateVideo)
	admin.Patch("/videos/:id", h.UpdateVideo)
	admin.Delete("/videos/:id", h.DeleteVideo)
	admin.Post("/videos/resolve-metadata", h.ResolveMetadata)
	admin.Post("/videos/:id/translate", h.TranslateVideo)
	admin.Post("/videos/:id/feature", h.SetFeatured)
	admin.Put("/videos/:id/translations", h.UpsertVideoTranslation)

	admin.Get("/categories", h.ListCategories)
	admin.Post("/categories", h.CreateCategory)
	admin.Patch("/categories/:id", h.UpdateCategory)
	admin.Delete("/categories/:id", h.DeleteCategory)

	admin.Get("/users/:userId/roles", h.ListUserRoles)
	admin.Post("/users/:userId/roles", h.AssignRole)
	admin.Delete("/users/:userId/roles", h.RevokeRole)

	addr := config.GetListenAddr()
	config.Log.Infof("Starting Catalog API on %s", addr)
	log.Fatal(app.Listen(addr))
}
