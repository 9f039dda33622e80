package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blackeagles/config"
	"blackeagles/internal/database"
	"blackeagles/internal/mailer"
	"blackeagles/internal/queue"
	"blackeagles/internal/server"
	"blackeagles/internal/session"
	"blackeagles/internal/worker"
	"blackeagles/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L.Fatal("Failed to load config", zap.Error(err))
	}
	if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
		logger.L.Warn("Invalid log level, keeping info", zap.String("level", cfg.Server.LogLevel))
	}
	defer logger.L.Sync()
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		logger.L.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.L.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Redis is optional; without it sessions and notifications stay in process.
	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		logger.L.Warn("Redis unavailable, using in-memory sessions", zap.Error(err))
	} else {
		defer rdb.Close()
	}

	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, cfg.Session.TTL)
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	}

	notifications, err := startNotifications(ctx, cfg, rdb)
	if err != nil {
		logger.L.Fatal("Failed to start notifications", zap.Error(err))
	}

	services, err := server.NewServices(cfg, pool, rdb, sessions, notifications)
	if err != nil {
		logger.L.Fatal("Failed to build services", zap.Error(err))
	}
	router, err := server.NewRouter(cfg, services)
	if err != nil {
		logger.L.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.L.Info("Server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// startNotifications returns nil when no recipient is configured.
func startNotifications(ctx context.Context, cfg *config.Config, rdb *redis.Client) (queue.NotificationQueue, error) {
	if cfg.Mail.NotifyTo == "" {
		logger.L.Info("Inquiry notifications disabled")
		return nil, nil
	}

	var sender mailer.Sender = mailer.NewNoopSender()
	if cfg.Mail.ResendAPIKey != "" {
		sender = mailer.NewResendSender(cfg.Mail.ResendAPIKey, cfg.Mail.From)
	}

	var (
		q   queue.NotificationQueue
		err error
	)
	if cfg.Mail.UseStream && rdb != nil {
		q, err = queue.NewRedisStreamQueue(ctx, rdb, "web-"+uuid.NewString(), nil)
		if err != nil {
			return nil, err
		}
	} else {
		q = queue.NewMemoryQueue(100)
	}

	if err := worker.NewNotificationWorker(sender, q, cfg.Mail.NotifyTo).Start(ctx); err != nil {
		return nil, err
	}
	return q, nil
}
