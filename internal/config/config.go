package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultCatalogURL points at the published reference data. Any raw-JSON URL
// works; the builder degrades to an empty catalog when unreachable.
const DefaultCatalogURL = "https://raw.githubusercontent.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/main/data/start.json"

// Config holds runtime configuration for a builder session.
// Values are populated from .starsea.yaml, STARSEA_* env vars, and CLI flags.
type Config struct {
	CatalogURL  string `mapstructure:"catalog_url"`
	HostURL     string `mapstructure:"host_url"`
	SnapshotDB  string `mapstructure:"snapshot_db"`
	TotalBudget int    `mapstructure:"total_budget"`
	PageSize    int    `mapstructure:"page_size"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("catalog_url", DefaultCatalogURL)
	viper.SetDefault("host_url", "")
	viper.SetDefault("snapshot_db", "")
	viper.SetDefault("total_budget", 1000)
	viper.SetDefault("page_size", 6)
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix("starsea")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(".starsea")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	_ = viper.ReadInConfig()

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
