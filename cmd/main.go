// Package main wires the HTTP server for the IntegradorHub backend.
package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"integrador-hub/config"
	"integrador-hub/internal/repository"
	"integrador-hub/internal/storage"
	"integrador-hub/internal/transport/http/middleware"
	"integrador-hub/internal/transport/http/server/handlers-fiber"
	"integrador-hub/internal/usecase"
	"integrador-hub/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Repository.Backend, log.Named("repository"), cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "backend", cfg.Repository.Backend, "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	files, err := storage.New(ctx, cfg.Storage.Backend, log.Named("storage"), cfg)
	if err != nil {
		log.Errorw("storage initialization error", "backend", cfg.Storage.Backend, "error", err)
		return
	}

	uc := usecase.New(log.Named("usecase"), repo, files, cfg.HTTP.RequestTimeout)
	metrics := middleware.NewMetrics("integradorhub")

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins(), ","),
		AllowCredentials: true,
	}))
	serv.Use(metrics.Middleware())
	serv.Use(middleware.RequestLogger(log.Named("http")))
	serv.Use(middleware.SwaggerAccessLogger(log.Named("swagger")))
	serv.Use(middleware.InteractionLogger(log.Named("interaction")))

	serv.Get("/metrics", metrics.Handler())

	h := handlers_fiber.NewHandler(log.Named("api"), uc)
	h.Register(serv)

	go func() {
		log.Infow("server starting",
			"addr", cfg.ServerAddr(),
			"repository", cfg.Repository.Backend,
			"storage", cfg.Storage.Backend,
		)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.ShutdownWithContext(shutdownCtx)
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
