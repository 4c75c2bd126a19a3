// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	appointmentRepo "salonbook/database/repository/appointment"
	couponRepo "salonbook/database/repository/coupon"
	serviceRepo "salonbook/database/repository/service"
	staffRepo "salonbook/database/repository/staff"
	transactionRepo "salonbook/database/repository/transaction"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/availability"
	"salonbook/services/cart"
	"salonbook/services/checkout"
	"salonbook/services/payment"
	"salonbook/services/tasks"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	database.InitDB()
	cacheClient := utils.GetCacheClient()
	stripe.Key = config.AppConfig.StripeKey

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.PrometheusMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	staffProfiles := staffRepo.NewMongoStaffRepo()
	coupons := couponRepo.NewMongoCouponRepo()
	catalogue := serviceRepo.NewMongoServiceRepo()
	transactions := transactionRepo.NewMongoTransactionRepo()

	for name, ensure := range map[string]func() error{
		"appointments": apptRepo.EnsureIndexes,
		"coupons":      coupons.EnsureIndexes,
		"services":     catalogue.EnsureIndexes,
		"transactions": transactions.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Warn("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	// background transaction recording.
	queueClient := asynq.NewClient(cron.RedisOpt(config.AppConfig))
	defer queueClient.Close()
	worker := cron.InitTransactionWorker(config.AppConfig, transactions, logger)

	// services.
	availabilityService := availability.NewService(
		apptRepo,
		staffProfiles,
		availability.ScheduleFromConfig(config.AppConfig),
		config.Location(),
		config.AppConfig.ExcludedBookingStatuses,
		logger,
	)

	categories := serviceRepo.NewCachedCategoryResolver(catalogue, cacheClient, config.AppConfig.CategoryCacheTTL, logger)
	validator := cart.NewValidator(coupons, categories, config.AppConfig.Currency, logger)
	gateway := payment.NewGateway(config.AppConfig, logger)
	if !gateway.Configured() {
		logger.Warn("main: payment gateway has no credentials; checkout will be unavailable",
			zap.String("gateway", gateway.Name()))
	}
	checkoutService := checkout.NewService(validator, gateway, tasks.NewQueueRecorder(queueClient), logger)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(availabilityService, checkoutService)
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, []*redis.Client{cacheClient}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	stopMonitor()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
