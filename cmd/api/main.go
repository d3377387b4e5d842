package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/taskboard-api/internal/auth"
	"github.com/redmonkez12/taskboard-api/internal/config"
	"github.com/redmonkez12/taskboard-api/internal/database"
	httpServer "github.com/redmonkez12/taskboard-api/internal/http"
	"github.com/redmonkez12/taskboard-api/internal/logging"
	"github.com/redmonkez12/taskboard-api/internal/ratelimit"
	"github.com/redmonkez12/taskboard-api/internal/task"
	"github.com/redmonkez12/taskboard-api/internal/user"
)

// @title           Taskboard API
// @version         1.0
// @description     Personal task management API: accounts, sessions and per-user task CRUD.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Driver,
	)

	// Pick the persistence adapter. Postgres + Redis for real deployments;
	// memory keeps everything in-process.
	var (
		userRepo    user.Repository
		taskRepo    task.Repository
		rateLimiter ratelimit.Limiter
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := initDB(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		redisClient, err := initRedis(cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		defer redisClient.Close()

		userRepo = user.NewBunRepository(db)
		taskRepo = task.NewBunRepository(db)
		rateLimiter = ratelimit.NewRedisLimiter(redisClient)

	case config.DriverMemory:
		userRepo = user.NewMemoryRepository()
		taskRepo = task.NewMemoryRepository()
		rateLimiter = ratelimit.NewNoopLimiter()
	}

	pasetoService, err := auth.NewPasetoService(cfg.Auth.PasetoKey)
	if err != nil {
		return fmt.Errorf("failed to initialize PASETO service: %w", err)
	}

	authService := auth.NewService(userRepo, pasetoService, cfg.Auth.TokenDuration)
	authHandler := auth.NewHandler(authService, rateLimiter, !cfg.Server.IsDevelopment())
	authMiddleware := auth.NewMiddleware(pasetoService)

	taskService := task.NewService(taskRepo)
	taskHandler := task.NewHandler(taskService)

	router := httpServer.NewRouter(cfg, authHandler, authMiddleware, taskHandler, logger)

	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initDB opens the Postgres connection and returns a Bun DB instance
func initDB(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return database.NewBunDB(sqlDB), nil
}

// initRedis initializes the Redis connection used by the rate limiter
func initRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
