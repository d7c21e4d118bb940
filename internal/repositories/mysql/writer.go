// repositories/mysql/writer.go
// Bulk upsert wells & prod_monthly (dipakai tool loader, bukan oleh API)
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"oilgas-portfolio/internal/wells"
)

const defaultBatch = 500

type Writer struct {
	DB    *sql.DB
	Batch int // baris per INSERT; <= 0 -> 500
}

func (wr *Writer) batch() int {
	if wr.Batch <= 0 {
		return defaultBatch
	}
	return wr.Batch
}

func nullable(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.DateOnly)
}

// wellArgs: urutan sama dengan wellColumns.
func wellArgs(w wells.Well) []any {
	vintage := any(nil)
	if w.Vintage != 0 {
		vintage = w.Vintage
	}
	return []any{
		w.ID, w.Name, w.Asset, w.Operator, w.Field, string(w.Status()), w.CompletionType,
		nullableDate(w.SpudDate), nullableDate(w.CompletionDate), vintage,
		nullable(w.Latitude), nullable(w.Longitude),
		nullable(w.TotalDepth), nullable(w.LateralLength), nullable(w.ProppantLoaded),
		nullable(w.Stages), nullable(w.DrillingDays),
		nullable(w.WellCost), nullable(w.IP30()), nullable(w.Economics.EUR),
		nullable(w.Economics.BreakEven), nullable(w.Economics.NPV), nullable(w.Economics.IRR),
		nullable(w.CurrentProduction()), nullable(w.Forecast()),
		nullable(w.WaterCut()), nullable(w.GOR()),
	}
}

const prodColumns = `well_id, month, prod_date, oil_rate, forecast, cumulative, water_cut, gor`

func prodArgs(wellID string, p wells.ProductionRecord) []any {
	var date, wc, gor any
	if p.Date != "" {
		date = p.Date
	}
	if p.WaterCut != nil {
		wc = *p.WaterCut
	}
	if p.GOR != nil {
		gor = *p.GOR
	}
	return []any{wellID, p.Month, date, p.Rate, p.Forecast, p.Cumulative, wc, gor}
}

// upsertStmt merakit INSERT multi-row + ON DUPLICATE KEY UPDATE untuk semua kolom non-key.
func upsertStmt(table, columns string, keys map[string]bool, rows int) string {
	cols := strings.Split(columns, ",")
	updates := make([]string, 0, len(cols))
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
		if !keys[cols[i]] {
			updates = append(updates, fmt.Sprintf("%s=VALUES(%s)", cols[i], cols[i]))
		}
	}
	return "INSERT INTO " + table + "(" + strings.Join(cols, ", ") + ") VALUES " + valueRows(len(cols), rows) +
		" ON DUPLICATE KEY UPDATE " + strings.Join(updates, ", ")
}

func (wr *Writer) flush(ctx context.Context, table, columns string, keys map[string]bool, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	args := make([]any, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		args = append(args, r...)
	}
	if _, err := wr.DB.ExecContext(ctx, upsertStmt(table, columns, keys, len(rows)), args...); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

// UpsertWells menulis sumur per batch. Mengembalikan jumlah baris yang dikirim.
func (wr *Writer) UpsertWells(ctx context.Context, ws []wells.Well) (int, error) {
	keys := map[string]bool{"id": true}
	buf := make([][]any, 0, wr.batch())
	n := 0
	for _, w := range ws {
		buf = append(buf, wellArgs(w))
		if len(buf) == wr.batch() {
			if err := wr.flush(ctx, "wells", wellColumns, keys, buf); err != nil {
				return n, err
			}
			n += len(buf)
			buf = buf[:0]
		}
	}
	if err := wr.flush(ctx, "wells", wellColumns, keys, buf); err != nil {
		return n, err
	}
	return n + len(buf), nil
}

// UpsertMonthly menulis history bulanan (key: well_id + month), urut well_id.
func (wr *Writer) UpsertMonthly(ctx context.Context, hist map[string][]wells.ProductionRecord) (int, error) {
	ids := make([]string, 0, len(hist))
	for id := range hist {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	keys := map[string]bool{"well_id": true, "month": true}
	buf := make([][]any, 0, wr.batch())
	n := 0
	for _, id := range ids {
		for _, p := range hist[id] {
			buf = append(buf, prodArgs(id, p))
			if len(buf) == wr.batch() {
				if err := wr.flush(ctx, "prod_monthly", prodColumns, keys, buf); err != nil {
					return n, err
				}
				n += len(buf)
				buf = buf[:0]
			}
		}
	}
	if err := wr.flush(ctx, "prod_monthly", prodColumns, keys, buf); err != nil {
		return n, err
	}
	return n + len(buf), nil
}
