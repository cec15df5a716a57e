// File: lojinha/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lojinha/config"
	"lojinha/database"
	appointmentRepo "lojinha/database/repository/appointment"
	favoriteRepo "lojinha/database/repository/favorite"
	fileRepo "lojinha/database/repository/file"
	productRepo "lojinha/database/repository/product"
	userRepoPkg "lojinha/database/repository/user"
	"lojinha/handlers"
	"lojinha/middleware"
	"lojinha/routes"
	productService "lojinha/services/product"
	"lojinha/services/scheduling"
	"lojinha/services/storage"
	uploadService "lojinha/services/upload"
	userService "lojinha/services/user"
	"lojinha/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	if err := database.Seed(database.DB); err != nil {
		logger.Sugar().Fatalf("main: failed to seed database: %v", err)
	}
	utils.InitAuthCache()

	var storageSvc storage.StorageService
	if config.AppConfig.StorageBackend == "cloudinary" {
		svc, err := storage.NewCloudinaryStorageService(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
		}
		storageSvc = svc
	} else {
		storageSvc = storage.NewLocalStorageService(config.AppConfig.UploadDir)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewGormUserRepo(database.DB)
	prodRepo := productRepo.NewGormProductRepo(database.DB)
	favRepo := favoriteRepo.NewGormFavoriteRepo(database.DB)
	filRepo := fileRepo.NewGormFileRepo(database.DB)
	apptRepo := appointmentRepo.NewGormAppointmentRepo(database.DB)

	tokenCache := utils.NewRedisTokenCache()

	// services.
	usrSvc := &userService.DefaultUserService{Repo: userRepo, TokenCache: tokenCache}
	prodSvc := &productService.DefaultProductService{Repo: prodRepo}
	favSvc := &productService.DefaultFavoriteService{Repo: favRepo, ProductRepo: prodRepo}
	upSvc := &uploadService.DefaultUploadService{Files: filRepo, Users: userRepo, Storage: storageSvc}
	schedSvc := &scheduling.DefaultSchedulingService{Repo: apptRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:        handlers.NewUserHandler(usrSvc),
		Products:     handlers.NewProductHandler(prodSvc),
		Favorites:    handlers.NewFavoriteHandler(favSvc),
		Uploads:      handlers.NewUploadHandler(upSvc),
		Appointments: handlers.NewAppointmentHandler(schedSvc),
		TokenCache:   tokenCache,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(database.DB, utils.GetAuthCacheClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
