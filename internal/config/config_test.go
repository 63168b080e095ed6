package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	if cfg.CatalogURL != DefaultCatalogURL {
		t.Fatalf("catalog url=%q", cfg.CatalogURL)
	}
	if cfg.HostURL != "" {
		t.Fatalf("host url=%q, want empty", cfg.HostURL)
	}
	if cfg.TotalBudget != 1000 {
		t.Fatalf("total budget=%d, want 1000", cfg.TotalBudget)
	}
	if cfg.PageSize != 6 {
		t.Fatalf("page size=%d, want 6", cfg.PageSize)
	}
	if cfg.Verbose {
		t.Fatalf("verbose default true")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("STARSEA_TOTAL_BUDGET", "1500")
	t.Setenv("STARSEA_HOST_URL", "http://localhost:8000")

	cfg := Load()
	if cfg.TotalBudget != 1500 {
		t.Fatalf("total budget=%d, want 1500", cfg.TotalBudget)
	}
	if cfg.HostURL != "http://localhost:8000" {
		t.Fatalf("host url=%q", cfg.HostURL)
	}
}
