package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/meinhoongagan/clinic-scheduler/config"
	"github.com/meinhoongagan/clinic-scheduler/db"
	"github.com/meinhoongagan/clinic-scheduler/routes"
	"github.com/meinhoongagan/clinic-scheduler/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	gdb, err := db.Open(db.Options{DatabaseURL: cfg.DatabaseURL, Debug: cfg.LogLevel == "debug"})
	if err != nil {
		return err
	}
	defer db.Close(gdb)
	log.Info("database connection established")

	if cfg.AutoMigrate {
		if err := db.Migrate(gdb, log); err != nil {
			return err
		}
	}

	app := routes.New(store.New(gdb), routes.Options{
		Logger:         log,
		CORSOrigins:    cfg.CORSOrigins,
		AuthRateLimit:  cfg.AuthRateLimit,
		AuthRateWindow: cfg.AuthRateWindow,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "port", cfg.Port)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("service", "clinic-scheduler")
}
