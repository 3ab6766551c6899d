package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/algonest/algonest/internal/api"
	"github.com/algonest/algonest/internal/config"
	"github.com/algonest/algonest/internal/judge"
	"github.com/algonest/algonest/internal/store"
	"github.com/algonest/algonest/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()
	queries := store.New(pool)

	w := worker.New(queries, cfg.SweepInterval, cfg.SweepStaleAfter)

	switch cfg.Mode {
	case "worker":
		log.Println("starting in worker-only mode")
		w.Start(ctx) // blocks until ctx cancelled
	case "api":
		// API-only: no embedded sweeper; run it separately with MODE=worker.
		log.Println("starting in api-only mode")
		serve(ctx, cfg, queries)
	default:
		// Default: run both API server and sweeper in the same process.
		go w.Start(ctx)
		serve(ctx, cfg, queries)
	}
}

func serve(ctx context.Context, cfg *config.Config, queries *store.Queries) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	judge0 := judge.NewClient(judge.Config{
		URL:                cfg.Judge0URL,
		AuthToken:          cfg.Judge0AuthToken,
		RapidAPIKey:        cfg.Judge0RapidAPIKey,
		RapidAPIHost:       cfg.Judge0RapidAPIHost,
		PollInterval:       cfg.Judge0PollInterval,
		MaxPolls:           cfg.Judge0MaxPolls,
		MaxConcurrentPolls: int64(cfg.Judge0MaxConcurrentPolls),
	})

	router := gin.Default()
	api.RegisterRoutes(router, cfg, queries, rdb, judge0)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
