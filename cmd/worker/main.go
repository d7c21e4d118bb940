// cmd/worker/main.go
// Worker mandiri: refresh data sumur sesuai jadwal cron lalu log ringkasan portofolio
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"oilgas-portfolio/internal/app"
	"oilgas-portfolio/internal/config"
	"oilgas-portfolio/internal/logger"
	"oilgas-portfolio/internal/services"
	"oilgas-portfolio/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log := logger.Log

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := app.NewRepository(cfg)
	src, conn := app.SelectSource(ctx, cfg, log)
	if conn != nil {
		defer conn.Close()
	}
	ref := &worker.Refresher{Repo: repo, Source: src, Log: log}
	analyzer := services.NewPortfolioAnalyzer(repo)

	job := func(ctx context.Context) {
		if err := ref.Refresh(ctx); err != nil {
			return
		}
		pa := analyzer.AnalyzePortfolio()
		log.WithFields(logrus.Fields{
			"event":            "portfolio.summary",
			"active_wells":     pa.TotalWells,
			"total_production": pa.TotalProduction,
			"total_npv":        pa.TotalNPV,
			"avg_irr":          pa.AvgIRR,
		}).Info("portfolio summary")
	}

	log.Println("Worker started...")
	job(ctx)

	runner := worker.NewRunner(ctx, log)
	if _, err := runner.Add(cfg.Worker.Schedule, job); err != nil {
		log.WithError(err).Fatal("invalid WORKER_SCHEDULE")
	}
	runner.Start()

	<-ctx.Done()
	runner.Stop()
}
