package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/stylediscover/server/internal/catalog"
	catalogrepo "github.com/stylediscover/server/internal/catalog/repository"
	"github.com/stylediscover/server/internal/prefs"
	prefsrepo "github.com/stylediscover/server/internal/prefs/repository"
	"github.com/stylediscover/server/kafka"
	"github.com/stylediscover/server/pkg/database"
	"github.com/stylediscover/server/pkg/logger"
	"github.com/stylediscover/server/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "discovery-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting discovery service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "discoverydb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Dedicated pool for health-check pings, kept apart from the ORM pool
	// so liveness probes still answer while GORM's pool is saturated
	healthDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health-check connection")
	}
	defer healthDB.Close()

	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Migrate, seed, and load the catalog snapshot
	repo := catalogrepo.NewGormOutfitRepositoryWithTracing(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.SeedWithContext(startupCtx, catalogrepo.SeedOutfits()); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	outfits, err := repo.FindAllWithContext(startupCtx)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load catalog")
	}
	snapshot := catalog.NewSnapshot(outfits)

	logger.Logger.Info().Int("catalog_size", snapshot.Len()).Msg("Catalog snapshot loaded")

	// Connect to Redis for preference persistence
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisClient, err := prefsrepo.NewRedisClient(
		getEnv("REDIS_ADDR", "localhost:6379"),
		getEnv("REDIS_PASSWORD", ""),
		redisDB,
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	store := prefs.NewStore(prefsrepo.NewRedisStore(redisClient))

	// Kafka publisher is optional; events are skipped when brokers are absent
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize handlers with Wire DI
	discoveryHandler := InitializeDiscoveryHandler(snapshot, store)
	discoveryHandler.SetCatalogSize(snapshot.Len())

	prefsHandler := InitializePrefsHandler(store, snapshot, publisher)

	// Setup router
	router := mux.NewRouter()
	discoveryHandler.RegisterRoutes(router)
	prefsHandler.RegisterRoutes(router)

	// Health check endpoint
	discoveryHandler.RegisterHealthCheck(router, healthDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8081")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: otelhttp.NewHandler(c.Handler(router), "discovery-http"),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
