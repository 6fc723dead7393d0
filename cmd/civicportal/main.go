package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/aadhar"
	"github.com/janmarg/CivicPortal/internal/pkg/cache"
	"github.com/janmarg/CivicPortal/internal/pkg/config"
	"github.com/janmarg/CivicPortal/internal/pkg/constants"
	"github.com/janmarg/CivicPortal/internal/pkg/database"
	"github.com/janmarg/CivicPortal/internal/pkg/env"
	"github.com/janmarg/CivicPortal/internal/pkg/router"
	"github.com/janmarg/CivicPortal/internal/pkg/statistics"
)

func main() {
	app, cfg := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, *config.Config) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database.SetupDatabase(cfg.Database)
	cache.SetupCache(cfg.Cache)
	repository.InitializeFactory(database.GetDB())

	// warm the dashboard counters
	go statistics.UpdateStatisticsCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/civicportal to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	engine := html.New(basePath+"views", ".html")
	engine.AddFunc("maskAadhar", aadhar.Mask)

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 16 * 1024 * 1024, // complaint images only, keep uploads small
	})

	// ignore and cache favicon
	app.Use(favicon.New(favicon.Config{
		File:         basePath + "public/assets/icons/favicon.ico",
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			"admin": env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// static uploads (complaint images)
	app.Static(constants.UploadsRoute, cfg.Upload.Dir, fiber.Static{
		CacheDuration: 10 * time.Second,
		Compress:      false,
		MaxAge:        604800, // 7 days
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, cfg)

	return app, cfg
}
