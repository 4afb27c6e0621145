package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"design-api/internal/common/config"
	"design-api/internal/common/middleware"
	"design-api/internal/design/document"
	"design-api/internal/design/handlers"
	"design-api/internal/design/importer"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Designer Service
// ============================================================

func main() {
	cfg := config.Load()

	store := document.NewStore()
	if cfg.SeedSVG != "" {
		if err := seedFromSVG(store, cfg.SeedSVG); err != nil {
			log.Fatalf("Failed to seed document from %s: %v", cfg.SeedSVG, err)
		}
	}

	handler := handlers.NewDesignHandler(store)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Designer Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handler.LivenessProbe)
	app.Get("/health/ready", handler.ReadinessProbe)
	app.Get("/health/startup", handler.StartupProbe)

	// ============================================================
	// API Docs Routes
	// ============================================================

	app.Get("/docs", handlers.DocsUI)
	app.Get("/docs/openapi.yaml", handlers.OpenAPISpec)

	// ============================================================
	// Shape Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Post("/shapes", handler.CreateShape)
	api.Post("/shapes/import", handler.ImportSVG)
	api.Get("/shapes/:id", handler.GetShape)
	api.Delete("/shapes/:id", handler.DeleteShape)

	// ============================================================
	// Interaction Routes
	// ============================================================

	api.Get("/shapes/:id/interactions", handler.ListInteractions)
	api.Post("/shapes/:id/interactions", handler.AddInteraction)
	api.Delete("/shapes/:id/interactions/:index", handler.RemoveInteraction)
	api.Put("/shapes/:id/interactions/:index/event-type", handler.SetEventType)
	api.Put("/shapes/:id/interactions/:index/action-type", handler.SetActionType)
	api.Put("/shapes/:id/interactions/:index/destination", handler.SetDestination)
	api.Put("/shapes/:id/interactions/:index/overlay-pos-type", handler.SetOverlayPosType)
	api.Put("/shapes/:id/interactions/:index/overlay-position", handler.SetOverlayPosition)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Designer Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func seedFromSVG(store *document.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	shapes, err := importer.ImportSVG(f)
	if err != nil {
		return err
	}
	for _, shape := range shapes {
		store.PutShape(shape)
	}
	log.Printf("Seeded document with %d shapes from %s", len(shapes), path)
	return nil
}
