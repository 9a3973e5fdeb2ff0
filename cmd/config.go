package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"mapdoc/internal/report"
)

type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// getBrand assembles the branding pass-through from viper (flag > config
// file > default).
func getBrand() report.Brand {
	return report.Brand{
		Name:    viper.GetString("brand.name"),
		Tagline: viper.GetString("brand.tagline"),
		Hex:     viper.GetString("brand.color"),
	}
}

// getDBConfig returns the deploy-target connection settings.
func getDBConfig() (*DBConfig, error) {
	var cfg DBConfig
	if err := viper.UnmarshalKey("database", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required (via flag or config)")
	}
	return &cfg, nil
}
