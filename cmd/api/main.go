package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vishnuv55/SPC-Backend/internal/bootstrap"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/logger"
	"github.com/vishnuv55/SPC-Backend/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	ctx := context.Background()
	app, err := bootstrap.NewApp(ctx, *configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start application")
	}

	srv := server.New(app.Config.Server.Port, app.Router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
	app.Close(shutdownCtx)
}
