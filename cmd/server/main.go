package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/api"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/cache"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/config"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/flights"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/llm"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/places"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/planner"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/storage"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/weather"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	// Missing required configuration (the Gemini credential above all) is
	// the one condition the service refuses to start on.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx := context.Background()

	// Connect to PostgreSQL.
	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	// Run migrations.
	migrationsDir := "migrations"
	if err := storage.RunMigrations(ctx, pool, migrationsDir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations applied")

	// Connect to Redis.
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	// Wire dependencies. The adapters receive their mock-mode decision from
	// the config object; nothing below reads the environment.
	repo := storage.NewRepository(pool)
	cacheLayer := cache.NewCache(redisClient)

	weatherSvc := weather.NewService(weather.NewClient(cfg.AccuWeatherAPIKey), cfg.MockWeather(), log)
	flightSvc := flights.NewService(flights.NewClient(), cfg.MockFlights(), log)
	composer := planner.New(llm.NewClient(cfg.GeminiAPIKey), weatherSvc, flightSvc, places.NewBuilder(), log)

	handlers := api.NewHandlers(repo, cacheLayer, composer, log)

	if cfg.MockWeather() {
		log.Warn("weather adapter running in mock mode")
	}
	if cfg.MockFlights() {
		log.Warn("flight adapter running in mock mode")
	}

	// Build router with pingers adapted for health check.
	dbPinger := &pgxPoolPinger{pool: pool}
	redisPinger := &redisPingerAdapter{client: redisClient}

	router := api.NewRouter(handlers, cfg.BearerToken, dbPinger, redisPinger, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // plan creation may sit through two 30s adapter timeouts
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// pgxPoolPinger adapts pgxpool.Pool to the api health-check interface.
type pgxPoolPinger struct {
	pool interface {
		Ping(ctx context.Context) error
	}
}

func (p *pgxPoolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// redisPingerAdapter adapts redis.Client to the api health-check interface.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
