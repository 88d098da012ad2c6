package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"catalog-admin-core/internal/application"
	"catalog-admin-core/internal/config"
	"catalog-admin-core/internal/domain"
	apiinfra "catalog-admin-core/internal/infrastructure/api"
	"catalog-admin-core/internal/infrastructure/assets"
	"catalog-admin-core/internal/infrastructure/metrics"
	securitymiddleware "catalog-admin-core/internal/infrastructure/middleware"
	"catalog-admin-core/internal/infrastructure/pubsub"
	"catalog-admin-core/internal/infrastructure/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	cfg := config.Load()

	// Environment overrides for deploy-time settings
	if v := os.Getenv("MONGODB_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("MONGODB_DATABASE"); v != "" {
		cfg.MongoDatabase = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPServerAddr = ":" + port
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Connect to MongoDB
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDatabase)

	// Redis is optional: without it, live updates stay instance-local
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
	}

	// Initialize repositories
	taxonomyRepo := repository.NewMongoTaxonomyRepository(db)
	sectionRepo := repository.NewMongoSectionRepository(db)
	optionRepo := repository.NewMongoOptionRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	projectRepo := repository.NewMongoProjectRepository(db)
	userRepo := repository.NewMongoUserRepository(db)

	// Initialize change feed and cross-instance bridge
	feed := pubsub.NewChangeFeed(logger)
	bridge := pubsub.NewRedisBridge(feed, redisClient, logger)

	bridgeCtx, stopBridge := context.WithCancel(context.Background())
	defer stopBridge()
	go bridge.Run(bridgeCtx)

	// Asset host
	assetHost := assets.NewCloudinaryClient(cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset, logger)

	// Tenant taxonomy defaults come from config, not code
	defaults := make(map[domain.Tenant]application.TaxonomyDefaults, len(cfg.Tenants))
	for tenant, d := range cfg.Tenants {
		defaults[domain.Tenant(tenant)] = application.TaxonomyDefaults{
			Brands:     d.Brands,
			Categories: d.Categories,
		}
	}

	// Initialize application services
	taxonomyService := application.NewTaxonomyService(taxonomyRepo, sectionRepo, bridge, defaults, logger)
	optionService := application.NewOptionListService(optionRepo, bridge, logger)
	publishService := application.NewPublishService(productRepo, assetHost, bridge, logger)
	projectService := application.NewProjectService(projectRepo, assetHost, bridge, logger)
	adminService := application.NewAdminService(userRepo, logger)

	apiHandlers := apiinfra.New(
		taxonomyService,
		optionService,
		publishService,
		projectService,
		adminService,
		feed,
		logger,
	)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(securitymiddleware.SecurityHeadersMiddleware())
	r.Use(metrics.Middleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(securitymiddleware.AdminKeyMiddleware(adminService, logger))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// Admin API
	r.Route("/api/v1", apiHandlers.Routes)

	logger.Info().Str("addr", cfg.HTTPServerAddr).Msg("Starting API server")
	if err := http.ListenAndServe(cfg.HTTPServerAddr, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
