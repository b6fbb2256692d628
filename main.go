package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-manager/config"
	"task-manager/config/setup"
	"task-manager/pkg/logger"
)

func main() {
	os.Exit(run(config.Load(), shutdownSignal()))
}

// run serves until stop fires and returns the process exit code. Every deferred
// close has happened by the time it returns.
func run(cfg *config.Config, stop <-chan os.Signal) int {
	log, logCloser, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		AddSource:  cfg.Env == "development",
		FilePath:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		slog.Error("failed to set up logger", "error", err)
		return 1
	}
	defer logCloser.Close()
	slog.SetDefault(log)

	// The store must be usable before anything is served
	db, err := setup.InitDatabase(cfg.DBPath, log)
	if err != nil {
		log.Error("failed to initialize database", "path", cfg.DBPath, "error", err)
		return 1
	}

	application := setup.InitApp(db, log)
	defer setup.Shutdown(application, log)

	app := setup.NewFiberApp(cfg, log)
	setup.ApplyMiddleware(app, cfg, log)
	setup.RegisterRoutes(app, application)

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-serverErr:
		log.Error("server failed", "error", err)
		return 1
	case <-stop:
	}

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
	return 0
}

func shutdownSignal() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	return quit
}
