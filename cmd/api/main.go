// @title                       Realtor API
// @version                     1.0
// @description                 Home listings marketplace with role-based access for buyers, realtors and admins.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/homefinder/realtor-api/internal/api"
	"github.com/homefinder/realtor-api/internal/core/auth"
	"github.com/homefinder/realtor-api/internal/core/ports"
	"github.com/homefinder/realtor-api/internal/core/service"
	"github.com/homefinder/realtor-api/internal/infrastructure/config"
	mongostore "github.com/homefinder/realtor-api/internal/infrastructure/db/mongo"
	redisstore "github.com/homefinder/realtor-api/internal/infrastructure/db/redis"
	"github.com/homefinder/realtor-api/internal/infrastructure/http/handlers"
	"github.com/homefinder/realtor-api/internal/infrastructure/imagehost"
	"github.com/homefinder/realtor-api/internal/infrastructure/queue"
	"github.com/homefinder/realtor-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.New(logger.Options{})
		boot.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "realtor-api",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting realtor api")

	// --- Storage ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		URL:      cfg.Redis.URL,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	users := mongostore.NewUserRepository(db)
	homes := mongostore.NewHomeRepository(db)
	messages := mongostore.NewMessageRepository(db)
	for name, ensure := range map[string]func(context.Context) error{
		"users":    users.EnsureIndexes,
		"homes":    homes.EnsureIndexes,
		"messages": messages.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("ensure indexes")
		}
	}

	// --- Image cleanup ---
	var host ports.ImageHost = imagehost.NewLogHost(log)
	hostCfg := imagehost.Config{
		CloudName: cfg.ImageCleanup.CloudName,
		APIKey:    cfg.ImageCleanup.APIKey,
		APISecret: cfg.ImageCleanup.APISecret,
	}
	if hostCfg.Enabled() {
		cld, err := imagehost.NewCloudinary(hostCfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("configure image host")
		}
		host = cld
	}
	dispatcher := queue.NewDispatcher(cfg.ImageCleanup.Workers, host, log)
	dispatcher.Start(ctx)

	// --- Core ---
	hasher := auth.NewPasswordHasher()
	keys := auth.NewProductKeyMinter(hasher, cfg.ProductKeySecret)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	guard := auth.NewGuard(tokens, users, log)

	e := api.NewRouter(api.Deps{
		Log:      log,
		Guard:    guard,
		Auth:     service.NewAuthService(users, hasher, keys, tokens, log),
		Homes:    service.NewHomeService(homes, users, messages, dispatcher, log),
		Messages: service.NewMessageService(homes, users, messages, redisstore.NewInquiryDedup(rdb, cfg.Redis.InquiryWindow), log),
		Readiness: map[string]handlers.Check{
			"mongodb": handlers.MongoCheck(mongoClient),
			"redis":   handlers.RedisCheck(rdb),
		},
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	done := make(chan struct{})
	go func() {
		dispatcher.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(cfg.ShutdownTimeout):
		log.Warn().Msg("image cleanup workers did not stop in time")
	}

	log.Info().Msg("realtor api stopped")
}
