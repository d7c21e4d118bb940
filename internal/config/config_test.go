package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Economics.OilPrice != 75 || c.Economics.GasPrice != 3.5 || c.Economics.DiscountRate != 10 {
		t.Fatalf("unexpected economics defaults: %+v", c.Economics)
	}
	if c.History.Months != 24 {
		t.Fatalf("history months = %d, want 24", c.History.Months)
	}
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := "app_port: \"9000\"\neconomics:\n  oil_price: 80\n  gas_price: 4\nworker:\n  enabled: true\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GAS_PRICE", "2.75")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.AppPort != "9000" {
		t.Fatalf("app port = %q, want 9000", c.AppPort)
	}
	if c.Economics.OilPrice != 80 {
		t.Fatalf("oil price = %v, want 80 from file", c.Economics.OilPrice)
	}
	if c.Economics.GasPrice != 2.75 {
		t.Fatalf("gas price = %v, want env override 2.75", c.Economics.GasPrice)
	}
	if !c.Worker.Enabled {
		t.Fatalf("worker should be enabled from file")
	}
}

func TestLoadRejectsNonPositiveOilPrice(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OIL_PRICE", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for negative oil price")
	}
}

func TestMySQLDSN(t *testing.T) {
	c := defaults()
	c.MySQL.User, c.MySQL.Password = "u", "p"
	if got, want := c.MySQLDSN(), "u:p@tcp(localhost:3306)/oilgas?parseTime=true"; got != want {
		t.Fatalf("MySQLDSN() = %q, want %q", got, want)
	}
	c.MySQL.DSN = "x:y@tcp(db:3306)/w"
	if got := c.MySQLDSN(); got != "x:y@tcp(db:3306)/w" {
		t.Fatalf("explicit DSN not preferred: %q", got)
	}
}
