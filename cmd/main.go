package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/daveonthegit/OutfAI/internal/config"
	"github.com/daveonthegit/OutfAI/internal/database"
	"github.com/daveonthegit/OutfAI/internal/engine"
	"github.com/daveonthegit/OutfAI/internal/handler"
	"github.com/daveonthegit/OutfAI/internal/repository"
	"github.com/daveonthegit/OutfAI/internal/service"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to Redis
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Initialize layers
	garmentRepo := repository.NewGarmentRepository(db)
	outfitRepo := repository.NewOutfitRepository(db)
	recSvc := service.NewRecommendationService(garmentRepo, outfitRepo, rdb, engine.New())
	garmentSvc := service.NewGarmentService(garmentRepo, rdb)
	recHandler := handler.NewRecommendationHandler(recSvc)
	garmentHandler := handler.NewGarmentHandler(garmentSvc)

	// Load swagger spec
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger spec not found, swagger UI will be unavailable", "error", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:         "outfai",
		ServerHeader:    "outfai",
		StructValidator: handler.NewStructValidator(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger
	if swaggerYAML != nil {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// Routes
	app.Get("/health", recHandler.Health)

	api := app.Group("/api/v1")
	api.Post("/recommendations", recHandler.Recommend)
	api.Get("/users/:id/outfits", recHandler.GetOutfits)
	api.Get("/users/:id/garments", garmentHandler.ListGarments)
	api.Post("/users/:id/garments", garmentHandler.CreateGarment)
	api.Delete("/garments/:id", garmentHandler.DeleteGarment)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("outfai starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down outfai")
	_ = app.Shutdown()
}
