// internal/worker/source.go
// Sumber data bulk untuk mengisi repository: MySQL, file CSV, atau data contoh

package worker

import (
	"context"
	"fmt"
	"os"

	"oilgas-portfolio/internal/importer"
	"oilgas-portfolio/internal/wells"
)

// Source menghasilkan snapshot lengkap. history nil -> repository meregenerasi history sintetis.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]wells.Well, map[string][]wells.ProductionRecord, error)
}

type CSVFileSource struct{ Path string }

func (s CSVFileSource) Name() string { return "csv:" + s.Path }

func (s CSVFileSource) Load(ctx context.Context) ([]wells.Well, map[string][]wells.ProductionRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	ws, err := importer.ParseCSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return ws, nil, nil
}

// SampleSource: 12 sumur contoh untuk jalan tanpa database.
type SampleSource struct{}

func (SampleSource) Name() string { return "sample" }

func (SampleSource) Load(context.Context) ([]wells.Well, map[string][]wells.ProductionRecord, error) {
	return wells.SampleWells(), nil, nil
}
