package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Rashi006/aws-capstone-blood-bridge/internal/api/http"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/api/http/handlers"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/auth"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/config"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/events"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/notify"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/observability"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/persistence"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/repository"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/service"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redisConn := persistence.NewRedis(cfg.Redis, logger)
	defer redisConn.Close()

	var (
		userRepo      repository.UserRepository
		inventoryRepo repository.InventoryRepository
		requestRepo   repository.RequestRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewUserRepository(pool)
		inventoryRepo = repository.NewInventoryRepository(pool)
		requestRepo = repository.NewRequestRepository(pool)
	} else {
		userRepo = repository.NewMemoryUserRepository()
		inventoryRepo = repository.NewMemoryInventoryRepository()
		requestRepo = repository.NewMemoryRequestRepository()
	}

	dispatcher := events.NewInMemoryDispatcher()
	alerter := notify.NewRedisAlerter(redisConn.Client, cfg.Notification.Channel)

	authService := service.NewAuthService(*cfg, userRepo, dispatcher)
	inventoryService := service.NewInventoryService(inventoryRepo, dispatcher)
	requestService := service.NewRequestService(requestRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, alerter, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redisConn),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(requestService, inventoryService, logger),
		Requests:       handlers.NewRequestsHandler(requestService, logger),
		Inventory:      handlers.NewInventoryHandler(inventoryService, logger),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
