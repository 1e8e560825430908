package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/vojtechokenka/nokturo/internal/config"
	"github.com/vojtechokenka/nokturo/internal/database"
	"github.com/vojtechokenka/nokturo/internal/handlers"
	"github.com/vojtechokenka/nokturo/internal/logger"
	"github.com/vojtechokenka/nokturo/internal/middleware"
	"github.com/vojtechokenka/nokturo/internal/realtime"
	"github.com/vojtechokenka/nokturo/internal/services"
	"github.com/vojtechokenka/nokturo/internal/storage"
	"github.com/vojtechokenka/nokturo/internal/types"

	_ "github.com/vojtechokenka/nokturo/docs/api" // Swagger docs
)

// @title Nokturo Studio API
// @version 1.0.0
// @description Content service behind the Nokturo studio application
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/vojtechokenka/nokturo
// @contact.email vojtech@okenka.dev

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Upload storage backend
	uploader, err := newUploader(cfg, zl)
	if err != nil {
		log.Fatalf("Failed to create uploader: %v", err)
	}

	// Realtime hub for comment change events
	hub := realtime.NewHub(zl)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("nokturo")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Authorizer client; auth middleware depends on this
	if err := services.InitAuthorizer(cfg, "http", "localhost:"+cfg.Port); err != nil {
		zl.Warnw("authorizer init failed, authenticated routes will reject", "error", err)
	}

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	documentHandler := &handlers.DocumentHandler{DB: db}
	commentHandler := &handlers.CommentHandler{DB: db, Hub: hub}
	uploadHandler := &handlers.UploadHandler{Uploader: uploader}
	realtimeHandler := &handlers.RealtimeHandler{Hub: hub}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}

	// Health (public)
	api.Get("/health", healthHandler.Health)

	// Product description routes (public GET, user POST)
	api.Get("/products/:product/description", documentHandler.GetDescription)
	api.Post("/products/:product/description", middleware.AuthUser(db), documentHandler.SaveDescription)
	api.Post("/products/:product/description/import", middleware.AuthUser(db), documentHandler.ImportDescription)

	// Comment routes
	api.Get("/products/:product/comments", commentHandler.ListComments)
	api.Post("/products/:product/comments", middleware.AuthUser(db), commentHandler.CreateComment)
	api.Patch("/comments/:id", middleware.AuthUser(db), commentHandler.UpdateComment)
	api.Delete("/comments/:id", middleware.AuthUser(db), commentHandler.DeleteComment)
	api.Delete("/products/:product/comments", middleware.AuthAdmin(db), commentHandler.ClearComments)

	// Image uploads
	api.Post("/uploads", middleware.AuthUser(db), uploadHandler.Upload)

	// Realtime comment stream
	api.Use("/realtime/:product", realtimeHandler.Upgrade)
	api.Get("/realtime/:product", realtimeHandler.Stream())

	// Local upload serving when using disk storage
	if cfg.UploadDriver == "local" {
		app.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// newUploader picks the storage backend from configuration.
func newUploader(cfg *config.Config, zl *logger.Logger) (storage.Uploader, error) {
	switch cfg.UploadDriver {
	case "gcs":
		return storage.NewGCSUploader(context.Background(), zl, cfg.GCSBucket, cfg.GCSCDNDomain, "uploads")
	default:
		return storage.NewLocalUploader(cfg.UploadDir, cfg.UploadBaseURL)
	}
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Auth middleware raises CustomError with its own code and type
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	// Check for version errors
	versionError := false
	if code == fiber.StatusConflict || (message != "" && len(message) >= 9 && message[:9] == "E_VERSION") {
		versionError = true
		errorType = "version"
		code = fiber.StatusConflict
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       code,
		"message":      message,
		"ok":           false,
		"versionError": versionError,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"url":          c.OriginalURL(),
		"type":         errorType,
	})
}
