package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// SegmentConfig holds the thresholds driving customer and product
// segmentation. Defaults mirror the published rule sets.
type SegmentConfig struct {
	VIPMinSpend       float64 `json:"vip-min-spend" mapstructure:"vip-min-spend"`
	RegularMaxSpend   float64 `json:"regular-max-spend" mapstructure:"regular-max-spend"`
	MinLifespanMonths int     `json:"min-lifespan-months" mapstructure:"min-lifespan-months"`
	CostLow           float64 `json:"cost-low" mapstructure:"cost-low"`
	CostMid           float64 `json:"cost-mid" mapstructure:"cost-mid"`
	CostHigh          float64 `json:"cost-high" mapstructure:"cost-high"`
}

// Config represents the application's configuration structure.
type Config struct {
	DBPath        string        `json:"db-path" mapstructure:"db-path"`
	ListenAddress string        `json:"listen-address" mapstructure:"listen-address"`
	OutputDir     string        `json:"output-dir" mapstructure:"output-dir"`
	LogLevel      string        `json:"log-level" mapstructure:"log-level"`
	ReferenceDate string        `json:"reference-date" mapstructure:"reference-date"` // YYYY-MM-DD, empty = today
	Segments      SegmentConfig `json:"segments" mapstructure:"segments"`
}

var defaults = map[string]interface{}{
	"db-path":                      "sales.db",
	"listen-address":               ":8080",
	"output-dir":                   "output",
	"log-level":                    "INFO",
	"reference-date":               "",
	"segments.vip-min-spend":       5000.0,
	"segments.regular-max-spend":   4000.0,
	"segments.min-lifespan-months": 12,
	"segments.cost-low":            100.0,
	"segments.cost-mid":            500.0,
	"segments.cost-high":           1000.0,
}

// InitConfig reads configuration from a JSON file and environment
// variables. Environment variables take precedence over the config
// file; a missing file falls back to defaults.
func InitConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}

// ReferenceTime resolves the configured reference date, or the current
// UTC date when unset. The pipeline itself never reads the wall clock.
func (c *Config) ReferenceTime() (time.Time, error) {
	if c.ReferenceDate == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", c.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference-date %q: %w", c.ReferenceDate, err)
	}
	return t, nil
}
