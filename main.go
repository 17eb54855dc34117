package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daboigbae/lanefinder/api"
	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/config"
	"github.com/daboigbae/lanefinder/middleware"
)

func main() {
	config.InitLogging()
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Unable to load configuration!!!", err)
	}

	if appConfig == nil {
		log.Fatal("Nil AppConfig, WTF")
	}

	application, err := app.NewApp(appConfig)
	if err != nil {
		log.Fatal("Unable to initialize application", err)
	}
	defer application.Close()

	slog.Debug("Configuration",
		"DevMode", appConfig.DevMode,
		"LogLevel", appConfig.LogLevel,
		"CacheTTL", appConfig.CacheTTL,
		"SnapshotDir", appConfig.SnapshotDir,
	)

	router := http.NewServeMux()
	api.AddApis(application, router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", appConfig.Port),
		Handler: middleware.AllStandardMiddleware(router),
	}

	// Listen for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Starting Lanefinder", "port", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-sigChan
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
