// Package config loads application settings from an optional YAML file and
// BUDGET_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"budget-tracker/internal/mockdata"
)

// StorageConfig selects the backing store.
type StorageConfig struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"in_memory"`
}

// MockDataConfig controls the deterministic sample data generator.
type MockDataConfig struct {
	SeedCount int `mapstructure:"seed_count"`
}

// ServiceConfig tunes the purchase service.
type ServiceConfig struct {
	SimulateLatency bool `mapstructure:"simulate_latency"`
}

// Config is the full application configuration.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	MockData MockDataConfig `mapstructure:"mock_data"`
	Service  ServiceConfig  `mapstructure:"service"`
}

// Load reads configuration from path, if given, layered under environment
// variables (BUDGET_STORAGE_PATH, BUDGET_MOCK_DATA_SEED_COUNT, ...). An
// empty path skips the file entirely.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.path", "budget.db")
	v.SetDefault("storage.in_memory", false)
	v.SetDefault("mock_data.seed_count", mockdata.DefaultCount)
	v.SetDefault("service.simulate_latency", true)

	v.SetEnvPrefix("BUDGET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
