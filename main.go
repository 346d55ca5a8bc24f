// File: beautymatch/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beautymatch/config"
	"beautymatch/database"
	accountRepo "beautymatch/database/repository/account"
	bookingRepo "beautymatch/database/repository/booking"
	notificationRepo "beautymatch/database/repository/notification"
	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/handlers"
	"beautymatch/middleware"
	"beautymatch/routes"
	"beautymatch/services/auth"
	"beautymatch/services/booking"
	"beautymatch/services/catalog"
	"beautymatch/services/notification"
	"beautymatch/services/onboarding"
	"beautymatch/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage disabled: %v", err)
	}

	if config.AppConfig.SeedDemoData {
		database.SeedDemoProfiles(logger)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accRepo := accountRepo.NewMongoAccountRepo()
	profRepo := profileRepo.NewMongoProfileRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	// services.
	authService := auth.NewDefaultAuthService(
		accRepo,
		profRepo,
		utils.GetAuthCacheClient(),
		config.AppConfig.LoginMaxFailures,
		time.Duration(config.AppConfig.LoginWindowMins)*time.Minute,
	)

	notificationService := &notification.DefaultNotificationService{
		Repo:     notifRepo,
		Accounts: accRepo,
		FCM:      utils.FCMClient,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:            bkRepo,
		ProfileRepo:     profRepo,
		NotificationSvc: notificationService,
	}

	catalogService := catalog.NewDefaultCatalogService(profRepo, utils.GetCacheClient())

	onboardingService := &onboarding.DefaultOnboardingService{
		Profiles: profRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(authService),
		Booking:      handlers.NewBookingHandler(bookingService, authService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Onboarding:   handlers.NewOnboardingHandler(onboardingService),
		Profile:      handlers.NewProfileHandler(profRepo),
		Storage:      handlers.NewStorageHandler(cloudinaryStorageService, accRepo, profRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
