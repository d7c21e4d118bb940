// internal/worker/refresher.go
// Job refresh: muat ulang snapshot dari Source lalu ganti isi repository

package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"oilgas-portfolio/internal/wells"
)

type Refresher struct {
	Repo   *wells.Repository
	Source Source
	Log    *logrus.Logger
}

// Refresh memuat Source sekali. Gagal load -> isi repository lama dipertahankan.
func (f *Refresher) Refresh(ctx context.Context) error {
	start := time.Now()
	ws, hist, err := f.Source.Load(ctx)
	if err == nil {
		if hist != nil {
			err = f.Repo.ReplaceWithHistory(ws, hist)
		} else {
			err = f.Repo.Replace(ws)
		}
	}

	entry := f.logger().WithFields(logrus.Fields{
		"event":       "wells.refresh",
		"source":      f.Source.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Error("refresh failed, keeping previous snapshot")
		return fmt.Errorf("refresh from %s: %w", f.Source.Name(), err)
	}
	entry.WithField("wells", len(ws)).Info("wells refreshed")
	return nil
}

func (f *Refresher) logger() *logrus.Logger {
	if f.Log == nil {
		return logrus.StandardLogger()
	}
	return f.Log
}
