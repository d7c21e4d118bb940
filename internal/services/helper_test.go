package services

import (
	"testing"

	"oilgas-portfolio/internal/wells"
)

func newRepo(t *testing.T, ws []wells.Well) *wells.Repository {
	t.Helper()
	repo := wells.NewRepository(wells.WithSeed(42))
	if err := repo.Replace(ws); err != nil {
		t.Fatalf("Replace() failed: %v", err)
	}
	return repo
}

func activeWell(id, asset string, prod, npv, irr, be float64) wells.Well {
	return wells.Well{
		ID:        id,
		Name:      id,
		Asset:     asset,
		WellCost:  8,
		Economics: wells.Economics{EUR: 500, NPV: npv, IRR: irr, BreakEven: be},
		State:     wells.Active{IP30: 1000, CurrentProduction: prod, Forecast: prod},
	}
}

// threeAssets: "North" unggul di semua metrik.
func threeAssets() []wells.Well {
	return []wells.Well{
		activeWell("N-1", "North", 900, 20, 55, 30),
		activeWell("N-2", "North", 700, 15, 45, 32),
		activeWell("S-1", "South", 500, 10, 40, 38),
		activeWell("S-2", "South", 300, 8, 30, 40),
		activeWell("W-1", "West", 400, 25, 35, 45),
	}
}
