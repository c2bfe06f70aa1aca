package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/router"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/setup"
	"github.com/learnhouse-dev/learnhouse/shared/config"
	"github.com/learnhouse-dev/learnhouse/shared/logger"
)

const (
	readTimeout     = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	deps := setup.SetupDependencies(cfg)
	defer deps.CancelFunc()

	server := configureServer(router.SetupRouter(deps), cfg)

	go func() {
		logger.Log.Info("starting frontend", "addr", server.Addr, "api", cfg.Public.API.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Error("shutdown", "error", err)
	}
}

func configureServer(handler http.Handler, cfg *config.Config) *http.Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Public.Frontend.Port
	}

	return &http.Server{
		Addr:        ":" + port,
		Handler:     handler,
		ReadTimeout: readTimeout,
		// a backend call may take up to the api timeout
		WriteTimeout: cfg.Public.API.Timeout + readTimeout,
	}
}
