// repositories/mysql/production_repo.go
// Repo history produksi bulanan per sumur
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"oilgas-portfolio/internal/wells"
)

type ProductionRepo struct{ DB *sql.DB }

type ProdRow struct {
	WellID     string
	Month      int
	ProdDate   sql.NullTime
	Rate       float64
	Forecast   sql.NullFloat64
	Cumulative sql.NullFloat64
	WaterCut   sql.NullFloat64
	GOR        sql.NullFloat64
}

// MonthlyHistory mengambil history untuk wellIDs, dikelompokkan per sumur
// dan urut month naik. wellIDs kosong -> map kosong tanpa query.
func (r *ProductionRepo) MonthlyHistory(ctx context.Context, wellIDs []string) (map[string][]wells.ProductionRecord, error) {
	out := map[string][]wells.ProductionRecord{}
	if len(wellIDs) == 0 {
		return out, nil
	}

	// Asumsi skema:
	//   prod_monthly(well_id VARCHAR, month INT, prod_date DATE, oil_rate DOUBLE,
	//                forecast DOUBLE, cumulative DOUBLE, water_cut DOUBLE, gor DOUBLE)
	q := `
		SELECT ` + prodColumns + `
		FROM prod_monthly
		WHERE well_id IN (` + placeholders(len(wellIDs)) + `)
		ORDER BY well_id, month ASC`
	args := make([]any, 0, len(wellIDs))
	for _, id := range wellIDs {
		args = append(args, id)
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query production monthly: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p ProdRow
		if err := rows.Scan(&p.WellID, &p.Month, &p.ProdDate, &p.Rate, &p.Forecast, &p.Cumulative, &p.WaterCut, &p.GOR); err != nil {
			return nil, err
		}
		out[p.WellID] = append(out[p.WellID], p.ToRecord())
	}
	return out, rows.Err()
}

func (p ProdRow) ToRecord() wells.ProductionRecord {
	rec := wells.ProductionRecord{
		Month:      p.Month,
		Rate:       p.Rate,
		Forecast:   p.Forecast.Float64,
		Cumulative: p.Cumulative.Float64,
	}
	if p.ProdDate.Valid {
		rec.Date = p.ProdDate.Time.Format(time.DateOnly)
	}
	if p.WaterCut.Valid {
		v := p.WaterCut.Float64
		rec.WaterCut = &v
	}
	if p.GOR.Valid {
		v := p.GOR.Float64
		rec.GOR = &v
	}
	return rec
}
