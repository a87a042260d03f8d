package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/naik-shashank/AgriMart/config"
	"github.com/naik-shashank/AgriMart/internal/delivery"
	"github.com/naik-shashank/AgriMart/internal/middleware"
	"github.com/naik-shashank/AgriMart/internal/repository"
	"github.com/naik-shashank/AgriMart/internal/storage"
	"github.com/naik-shashank/AgriMart/internal/usecase"
	"github.com/naik-shashank/AgriMart/pkg/db"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting AgriMart service...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	database, err := db.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer database.Client().Disconnect(context.Background())
	logger.Info("MongoDB connection established.")

	if err := repository.EnsureProductIndexes(ctx, database); err != nil {
		logger.Fatalf("Failed to create product indexes: %v", err)
	}
	if err := repository.EnsureShopIndexes(ctx, database); err != nil {
		logger.Fatalf("Failed to create shop indexes: %v", err)
	}
	logger.Info("Indexes ensured.")

	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// --- Dependency Injection ---
	productRepo := repository.NewMongoProductRepository(database, logger)
	orderRepo := repository.NewMongoOrderRepository(database, logger)
	shopRepo := repository.NewMongoShopRepository(database, logger)
	userRepo := repository.NewMongoUserRepository(database, logger)
	logger.Info("Repositories initialized.")

	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, logger)
	shopUseCase := usecase.NewShopUseCase(shopRepo, logger)
	logger.Info("Use cases initialized.")

	productHandler := delivery.NewProductHandler(productUseCase, fileStore, logger)
	orderHandler := delivery.NewOrderHandler(orderUseCase, logger)
	shopHandler := delivery.NewShopHandler(shopUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(userRepo, cfg.JWTSecret, logger)
	productHandler.RegisterRoutes(router, authRequired)
	orderHandler.RegisterRoutes(router, authRequired)
	shopHandler.RegisterRoutes(router, authRequired)
	logger.Info("Routes registered.")

	// --- Start Server ---
	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
