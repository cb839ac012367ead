package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalconnect/core/cache"
	"legalconnect/core/config"
	"legalconnect/core/database"
	"legalconnect/core/logger"
	"legalconnect/core/middleware"
	"legalconnect/modules/casemanagement"
	"legalconnect/modules/jobscheduler"
	"legalconnect/modules/notification"
	"legalconnect/modules/scheduling"
	"legalconnect/modules/user"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole service: config, storage, queue, modules, HTTP server.
// It blocks until SIGINT or SIGTERM and then shuts down in order.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Get()

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	cacheStore, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer cacheStore.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	queueClient := asynq.NewClient(redisOpt)
	defer queueClient.Close()
	queueInspector := asynq.NewInspector(redisOpt)
	defer queueInspector.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware()

	user.Init(e, db, mw)
	casemanagement.Init(e, db, mw)
	notificationSvc := notification.Init(e, db, mw)
	reminderSvc, reminderWorker := jobscheduler.Init(queueClient, queueInspector, redisOpt, notificationSvc)
	scheduling.Init(e, db, cacheStore, mw, notificationSvc, reminderSvc)

	if err := reminderWorker.Start(); err != nil {
		return fmt.Errorf("failed to start reminder worker: %w", err)
	}
	defer reminderWorker.Shutdown()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()
	logger.Info("Server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
