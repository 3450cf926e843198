package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloghub/blog-api/internal/api"
	"github.com/bloghub/blog-api/internal/core/service"
	mongodb "github.com/bloghub/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bloghub/blog-api/internal/infrastructure/db/redis"
	"github.com/bloghub/blog-api/internal/infrastructure/queue"
	"github.com/bloghub/blog-api/internal/pkg/config"
	"github.com/bloghub/blog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Blog API
// @version      1.0
// @description  REST API for blog posts, categories, comments and authentication.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- One-time initialization, before any request is served ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("post indexes failed")
	}
	if err := commentRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("comment indexes failed")
	}
	if err := userRepo.SeedDefaultRoles(ctx); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	// --- View counting pipeline ---
	viewService := service.NewViewService(postRepo, redisdb.NewViewDedup(rdb), logger.For("views"))
	views := queue.NewDispatcher(0, viewService, logger.For("dispatcher"))
	views.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, views, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
