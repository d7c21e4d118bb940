// repositories/mysql/wells_repo.go
// Sumber data sumur read-only dari MySQL (tabel wells)
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"oilgas-portfolio/internal/wells"
)

type WellsRepo struct{ DB *sql.DB }

// WellRow memetakan kolom tabel wells; kolom numerik nullable (NULL -> 0).
type WellRow struct {
	ID, Name, Asset             string
	Operator, Field, Status     sql.NullString
	CompletionType              sql.NullString
	SpudDate, CompletionDate    sql.NullTime
	Vintage                     sql.NullInt64
	Latitude, Longitude         sql.NullFloat64
	TotalDepth, LateralLength   sql.NullFloat64
	ProppantLoaded, Stages      sql.NullFloat64
	DrillingDays, WellCost      sql.NullFloat64
	IP30, EUR, BreakEven        sql.NullFloat64
	NPV, IRR                    sql.NullFloat64
	CurrentProduction, Forecast sql.NullFloat64
	WaterCut, GOR               sql.NullFloat64
}

// Asumsi skema:
//
//	wells(id VARCHAR PK, name, asset, operator, field, status, completion_type,
//	      spud_date DATE, completion_date DATE, vintage INT, latitude, longitude,
//	      total_depth, lateral_length, proppant_loaded, stages, drilling_days,
//	      well_cost, ip30, eur, break_even, npv, irr, current_production,
//	      forecast, water_cut, gor)
const wellColumns = `
	id, name, asset, operator, field, status, completion_type,
	spud_date, completion_date, vintage, latitude, longitude,
	total_depth, lateral_length, proppant_loaded, stages, drilling_days,
	well_cost, ip30, eur, break_even, npv, irr, current_production,
	forecast, water_cut, gor`

// ListWells mengambil semua sumur, opsional difilter asset.
func (r *WellsRepo) ListWells(ctx context.Context, asset string) ([]wells.Well, error) {
	q := `SELECT ` + wellColumns + ` FROM wells WHERE 1=1`
	args := []any{}
	if asset != "" {
		q += ` AND asset = ?`
		args = append(args, asset)
	}
	q += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query wells: %w", err)
	}
	defer rows.Close()

	var out []wells.Well
	for rows.Next() {
		var w WellRow
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Asset, &w.Operator, &w.Field, &w.Status, &w.CompletionType,
			&w.SpudDate, &w.CompletionDate, &w.Vintage, &w.Latitude, &w.Longitude,
			&w.TotalDepth, &w.LateralLength, &w.ProppantLoaded, &w.Stages, &w.DrillingDays,
			&w.WellCost, &w.IP30, &w.EUR, &w.BreakEven, &w.NPV, &w.IRR, &w.CurrentProduction,
			&w.Forecast, &w.WaterCut, &w.GOR,
		); err != nil {
			return nil, err
		}
		out = append(out, w.ToWell())
	}
	return out, rows.Err()
}

// ToWell mengubah baris DB menjadi model domain.
func (w WellRow) ToWell() wells.Well {
	status, _ := wells.ParseStatus(w.Status.String)
	return wells.Well{
		ID:             w.ID,
		Name:           w.Name,
		Asset:          w.Asset,
		Operator:       w.Operator.String,
		Field:          w.Field.String,
		CompletionType: w.CompletionType.String,
		SpudDate:       nullTime(w.SpudDate),
		CompletionDate: nullTime(w.CompletionDate),
		Vintage:        int(w.Vintage.Int64),
		Latitude:       w.Latitude.Float64,
		Longitude:      w.Longitude.Float64,
		TotalDepth:     w.TotalDepth.Float64,
		LateralLength:  w.LateralLength.Float64,
		ProppantLoaded: w.ProppantLoaded.Float64,
		Stages:         w.Stages.Float64,
		DrillingDays:   w.DrillingDays.Float64,
		WellCost:       w.WellCost.Float64,
		Economics: wells.Economics{
			EUR:       w.EUR.Float64,
			BreakEven: w.BreakEven.Float64,
			NPV:       w.NPV.Float64,
			IRR:       w.IRR.Float64,
		},
		State: wells.NewState(status, wells.ProductionFields{
			IP30:              w.IP30.Float64,
			CurrentProduction: w.CurrentProduction.Float64,
			Forecast:          w.Forecast.Float64,
			WaterCut:          w.WaterCut.Float64,
			GOR:               w.GOR.Float64,
		}),
	}
}

func nullTime(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
