/*
Kompilasi manual:
  go build -o tools/gen_dummy/load_to_mysql ./tools/gen_dummy

Pakai contoh:
  ./tools/gen_dummy/load_to_mysql \
    -csv wells.csv \
    -dsn "mcpuser:secret@tcp(127.0.0.1:3306)/oilgas?parseTime=true" \
    -months 24 -seed 7 -batch 1000 -truncate

Tanpa -csv: memuat 12 sumur contoh. History bulanan disintesis (hyperbolic + noise)
lalu ditulis ke prod_monthly, sehingga sumber MySQL API punya history tetap.
*/

// [FILE] tools/gen_dummy/load_to_mysql.go
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"oilgas-portfolio/internal/importer"
	"oilgas-portfolio/internal/logger"
	mysqlrepo "oilgas-portfolio/internal/repositories/mysql"
	"oilgas-portfolio/internal/wells"
	"oilgas-portfolio/pkg/db"
)

var (
	csvPath   = flag.String("csv", "", "CSV path (kosong = data contoh)")
	dsn       = flag.String("dsn", "root:password@tcp(127.0.0.1:3306)/oilgas?parseTime=true", "MySQL DSN")
	months    = flag.Int("months", wells.DefaultHistoryMonths, "Bulan history sintetis per sumur")
	seed      = flag.Uint64("seed", 1, "Seed history sintetis")
	batchSize = flag.Int("batch", 1000, "Insert batch size")
	truncate  = flag.Bool("truncate", false, "TRUNCATE wells & prod_monthly dulu")
)

func must(err error) {
	if err != nil {
		logger.Log.Fatal(err)
	}
}

func loadWells() []wells.Well {
	if *csvPath == "" {
		return wells.SampleWells()
	}
	f, err := os.Open(*csvPath)
	must(err)
	defer f.Close()
	ws, err := importer.ParseCSV(f)
	must(err)
	return ws
}

func main() {
	flag.Parse()
	logger.Init(os.Getenv("LOG_LEVEL"), "text", os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, *dsn, db.Options{Retries: 5, RetryWait: 2 * time.Second})
	must(err)
	defer conn.Close()

	if *truncate {
		for _, t := range []string{"prod_monthly", "wells"} {
			_, err := conn.ExecContext(ctx, "TRUNCATE TABLE "+t)
			must(err)
			logger.With(logrus.Fields{"table": t}).Info("truncated")
		}
	}

	// repository dipakai hanya untuk mensintesis history yang konsisten dengan API
	repo := wells.NewRepository(wells.WithSeed(*seed), wells.WithHistoryMonths(*months))
	must(repo.Replace(loadWells()))

	ws := repo.All()
	hist := make(map[string][]wells.ProductionRecord, len(ws))
	for _, w := range ws {
		if h := repo.History(w.ID, 0); len(h) > 0 {
			hist[w.ID] = h
		}
	}

	wr := &mysqlrepo.Writer{DB: conn, Batch: *batchSize}
	n, err := wr.UpsertWells(ctx, ws)
	must(err)
	logger.With(logrus.Fields{"table": "wells", "rows": n}).Info("[ok] upserted")

	n, err = wr.UpsertMonthly(ctx, hist)
	must(err)
	logger.With(logrus.Fields{"table": "prod_monthly", "rows": n}).Info("[ok] upserted")
}
