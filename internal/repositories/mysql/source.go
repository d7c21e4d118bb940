// repositories/mysql/source.go
// Gabungan wells + history sebagai satu sumber bulk replace
package mysql

import (
	"context"
	"database/sql"

	"oilgas-portfolio/internal/wells"
)

// Source membaca snapshot lengkap dari MySQL. Tidak pernah menulis.
type Source struct {
	Wells      *WellsRepo
	Production *ProductionRepo
}

func NewSource(db *sql.DB) *Source {
	return &Source{Wells: &WellsRepo{DB: db}, Production: &ProductionRepo{DB: db}}
}

func (s *Source) Name() string { return "mysql" }

// Load mengambil semua sumur + history bulanan yang tersedia.
func (s *Source) Load(ctx context.Context) ([]wells.Well, map[string][]wells.ProductionRecord, error) {
	ws, err := s.Wells.ListWells(ctx, "")
	if err != nil {
		return nil, nil, err
	}
	ids := make([]string, 0, len(ws))
	for _, w := range ws {
		ids = append(ids, w.ID)
	}
	hist, err := s.Production.MonthlyHistory(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return ws, hist, nil
}
