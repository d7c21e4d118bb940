// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"oilgas-portfolio/internal/app"
	"oilgas-portfolio/internal/config"
	"oilgas-portfolio/internal/logger"
	"oilgas-portfolio/internal/worker"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log := logger.Log

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt := app.Bootstrap(ctx, cfg, log) // <-- repo + sumber data + router
	defer rt.Close()

	// refresh berkala dalam proses yang sama (opsional)
	var runner *worker.Runner
	if cfg.Worker.Enabled {
		runner = worker.NewRunner(ctx, log)
		if _, err := runner.AddRefresh(cfg.Worker.Schedule, rt.Refresher); err != nil {
			log.WithError(err).Fatal("invalid WORKER_SCHEDULE")
		}
		runner.Start()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      rt.App.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"addr": srv.Addr, "version": BuildVersion, "wells": rt.App.Repo.Len()}).
			Info("API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")
	if runner != nil {
		runner.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
