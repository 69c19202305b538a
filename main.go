// File: marketly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketly/config"
	"marketly/cron"
	"marketly/database"
	reviewRepo "marketly/database/repository/review"
	serviceRepo "marketly/database/repository/service"
	taxonomyRepo "marketly/database/repository/taxonomy"
	userRepoPkg "marketly/database/repository/user"
	"marketly/handlers"
	"marketly/middleware"
	"marketly/routes"
	"marketly/services/catalog"
	"marketly/services/review"
	"marketly/services/tasks"
	"marketly/services/user"
	"marketly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	db := database.DB()

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := database.SeedTaxonomies(seedCtx, db); err != nil {
		logger.Error("main: seeding taxonomies failed", zap.Error(err))
	}
	seedCancel()

	authCache := utils.GetAuthCacheClient()
	revocations := utils.NewRedisRevocationStore(authCache)
	tokens := utils.NewTokenManager(config.AppConfig.JWTSecret, config.AppConfig.JWTTTL)

	imageStore, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary image store: %v", err)
	}
	if imageStore == nil {
		logger.Warn("main: cloudinary not configured; image uploads disabled")
	}

	// repositories.
	services := serviceRepo.NewMongoServiceRepo(db, logger)
	reviews := reviewRepo.NewMongoReviewRepo(db, logger)
	taxonomy := taxonomyRepo.NewMongoTaxonomyRepo(db, logger)
	users := userRepoPkg.NewMongoUserRepo(db, logger)

	// background rating reconcile.
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Services:    services,
		Taxonomy:    taxonomy,
		Images:      imageStore,
		ImageFolder: config.AppConfig.CloudinaryFolder,
		Logger:      logger,
	}
	reviewService := &review.DefaultReviewService{
		Reviews:    reviews,
		Services:   services,
		Reconciler: tasks.NewRatingReconciler(queueClient, config.AppConfig.RatingReconcileDelay),
		Logger:     logger,
	}
	userService := &user.DefaultUserService{
		Repo:        users,
		Services:    services,
		Tokens:      tokens,
		Revocations: revocations,
		Logger:      logger,
	}

	worker := cron.InitRatingWorker(reviewService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService),
		Reviews: handlers.NewReviewHandler(reviewService),
		Users:   handlers.NewUserHandler(userService),
	}

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxies); err != nil {
		logger.Fatal("Invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, middleware.JWTAuthMiddleware(tokens, revocations))

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, authCache, database.MongoClient)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
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
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
