package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"

	handler "github.com/aliskhannn/notification-service/internal/api/handlers/request"
	"github.com/aliskhannn/notification-service/internal/api/router"
	"github.com/aliskhannn/notification-service/internal/api/server"
	"github.com/aliskhannn/notification-service/internal/config"
	"github.com/aliskhannn/notification-service/internal/dispatch"
	"github.com/aliskhannn/notification-service/internal/provider"
	requestrepo "github.com/aliskhannn/notification-service/internal/repository/request"
	requestsvc "github.com/aliskhannn/notification-service/internal/service/request"
	"github.com/aliskhannn/notification-service/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	repo := requestrepo.NewRepository()
	providerClient := provider.NewClient(cfg.Provider)

	dispatchHandler := dispatch.NewHandler(providerClient, repo)
	dispatcher := worker.NewDispatcher(dispatchHandler, cfg.Workers.Count)

	go dispatcher.Run(ctx, cfg.Retry)

	service := requestsvc.NewService(repo, dispatcher)
	requestHandler := handler.NewHandler(service, val)

	r := router.New(requestHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().Msgf("server listening on %s", cfg.Server.HTTPPort)

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}
}
