// internal/worker/runner.go
// Scheduler cron (robfig/cron, format 6 field dengan detik)

package worker

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Runner struct {
	cron    *cron.Cron
	log     *logrus.Logger
	baseCtx context.Context
}

func NewRunner(baseCtx context.Context, log *logrus.Logger) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		cron:    cron.New(cron.WithSeconds()),
		log:     log,
		baseCtx: baseCtx,
	}
}

// Add menjadwalkan job; spec invalid dikembalikan sebagai error.
func (r *Runner) Add(spec string, job func(context.Context)) (cron.EntryID, error) {
	return r.cron.AddFunc(spec, func() { job(r.baseCtx) })
}

// AddRefresh menjadwalkan Refresher; error sudah dicatat oleh Refresh.
func (r *Runner) AddRefresh(spec string, f *Refresher) (cron.EntryID, error) {
	return r.Add(spec, func(ctx context.Context) { _ = f.Refresh(ctx) })
}

func (r *Runner) Start() {
	r.log.WithField("entries", len(r.cron.Entries())).Info("cron started")
	r.cron.Start()
}

// Stop menunggu job yang sedang berjalan selesai.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.log.Info("cron stopped")
}
