// internal/app/bootstrap.go
// Merakit repository, sumber data awal & narrator dari Config

package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"oilgas-portfolio/internal/config"
	"oilgas-portfolio/internal/llm"
	mysqlrepo "oilgas-portfolio/internal/repositories/mysql"
	"oilgas-portfolio/internal/wells"
	"oilgas-portfolio/internal/worker"
	"oilgas-portfolio/pkg/db"
)

// Runtime: hasil bootstrap. Close menutup koneksi DB bila ada.
type Runtime struct {
	App       *App
	Refresher *worker.Refresher
	db        *sql.DB
}

func (rt *Runtime) Close() {
	if rt.db != nil {
		_ = rt.db.Close()
	}
}

// NewRepository membuat repository sesuai asumsi ekonomi & history di config.
func NewRepository(cfg *config.Config) *wells.Repository {
	opts := []wells.Option{
		wells.WithHistoryMonths(cfg.History.Months),
		wells.WithSettings(wells.Settings{
			OilPrice:     cfg.Economics.OilPrice,
			GasPrice:     cfg.Economics.GasPrice,
			DiscountRate: cfg.Economics.DiscountRate,
		}),
	}
	if cfg.History.Seed != 0 {
		opts = append(opts, wells.WithSeed(cfg.History.Seed))
	}
	return wells.NewRepository(opts...)
}

// NewNarrator: OpenAI bila API key ada, selain itu fallback deterministik.
func NewNarrator(cfg *config.Config, log *logrus.Logger) *llm.Narrator {
	if cfg.LLM.APIKey == "" {
		log.Info("OPENAI_API_KEY empty; narrative uses fallback summary")
		return &llm.Narrator{}
	}
	c, err := llm.NewOpenAI(cfg.LLM.APIKey, cfg.LLM.APIBase, cfg.LLM.Model)
	if err != nil {
		log.WithError(err).Warn("init openai client failed; narrative uses fallback summary")
		return &llm.Narrator{}
	}
	return &llm.Narrator{Client: c}
}

// SelectSource: MySQL bila bisa di-ping, lalu CSV (WORKER_CSV_PATH), lalu data contoh.
func SelectSource(ctx context.Context, cfg *config.Config, log *logrus.Logger) (worker.Source, *sql.DB) {
	if dsn := cfg.MySQLDSN(); dsn != "" {
		conn, err := db.Open(ctx, dsn, db.Options{
			MaxOpen:   cfg.MySQL.MaxOpen,
			MaxIdle:   cfg.MySQL.MaxIdle,
			Retries:   3,
			RetryWait: 2 * time.Second,
		})
		if err == nil {
			log.WithField("source", "mysql").Info("wells source selected")
			return mysqlrepo.NewSource(conn), conn
		}
		log.WithError(err).Warn("mysql unavailable; falling back")
	}
	if cfg.Worker.CSVPath != "" {
		log.WithField("source", "csv").WithField("path", cfg.Worker.CSVPath).Info("wells source selected")
		return worker.CSVFileSource{Path: cfg.Worker.CSVPath}, nil
	}
	log.WithField("source", "sample").Info("wells source selected")
	return worker.SampleSource{}, nil
}

// Bootstrap merakit Runtime lengkap lalu melakukan load awal.
// Load awal gagal -> jatuh ke data contoh agar API tetap bisa melayani.
func Bootstrap(ctx context.Context, cfg *config.Config, log *logrus.Logger) *Runtime {
	repo := NewRepository(cfg)
	src, conn := SelectSource(ctx, cfg, log)

	ref := &worker.Refresher{Repo: repo, Source: src, Log: log}
	if err := ref.Refresh(ctx); err != nil {
		fallback := &worker.Refresher{Repo: repo, Source: worker.SampleSource{}, Log: log}
		_ = fallback.Refresh(ctx)
	}

	return &Runtime{
		App:       New(Deps{Repo: repo, Narrator: NewNarrator(cfg, log), Log: log}),
		Refresher: ref,
		db:        conn,
	}
}
