package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dan-tmpa/devops-capstone-project/internal/command"
	"github.com/dan-tmpa/devops-capstone-project/internal/config"
	"github.com/dan-tmpa/devops-capstone-project/internal/handler"
	"github.com/dan-tmpa/devops-capstone-project/internal/migrations"
	"github.com/dan-tmpa/devops-capstone-project/internal/query"
	"github.com/dan-tmpa/devops-capstone-project/internal/repository"
	"github.com/dan-tmpa/devops-capstone-project/shared/events"
	"github.com/dan-tmpa/devops-capstone-project/shared/logger"
	"github.com/dan-tmpa/devops-capstone-project/shared/middleware"
	"github.com/dan-tmpa/devops-capstone-project/shared/models"
	redisClient "github.com/dan-tmpa/devops-capstone-project/shared/redis"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("Account service stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis connection (read model cache + event streaming), optional
	var redis *redisClient.Client
	var publisher command.EventPublisher
	if cfg.RedisEnabled() {
		var err error
		redis, err = redisClient.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client)
		log.Info("Redis connected", zap.String("addr", cfg.RedisAddr))
	}

	// --- CQRS wiring ---
	var (
		writeRepo command.AccountWriter
		views     command.AccountViewCache
		readRepo  query.AccountReader
	)
	switch cfg.Store {
	case config.StoreMemory:
		store := repository.NewMemoryAccountRepository()
		writeRepo, readRepo = store, store
		log.Info("Using in-memory account store")
	default:
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if cfg.Migrate {
			if err := migrations.Up(db.DB); err != nil {
				return err
			}
			log.Info("Database migrations applied")
		}

		var cache repository.AccountCache
		if redis != nil {
			cache = redisClient.NewViewCache[models.Account](redis.Client, cfg.CacheTTL, log)
		}
		reads := repository.NewAccountReadRepository(db, cache)
		writeRepo, views, readRepo = repository.NewAccountWriteRepository(db), reads, reads
	}

	commandSvc := command.NewAccountCommandService(writeRepo, views, publisher, log)
	querySvc := query.NewAccountQueryService(readRepo)
	accountHandler := handler.NewAccountHandler(commandSvc, querySvc, log)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.LoggingMiddleware(log), middleware.Recovery(log))
	handler.RegisterRoutes(router, accountHandler)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Account service starting", zap.String("addr", cfg.Addr), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
