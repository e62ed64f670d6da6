package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the raw, unvalidated configuration for the game
type Config struct {
	Density         int     `json:"density"`
	SpawnRate       float64 `json:"spawn_rate"`
	Speed           int     `json:"speed_ms"`
	CellColor       string  `json:"cell_color"`
	BackgroundColor string  `json:"background_color"`
	Edge            string  `json:"edge"`
	Workers         int     `json:"workers"`
	Seed            int64   `json:"seed"`
	LogFile         string  `json:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Density:         2,
		SpawnRate:       0.05,
		Speed:           50,
		CellColor:       "white",
		BackgroundColor: "black",
		Edge:            "clipped",
		Workers:         1,
	}
}

// LoadConfig loads configuration from a JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bounds accepted by Resolve
const (
	MinDensity = 1
	MaxDensity = 10

	MinSpawnRate = 0.0
	MaxSpawnRate = 1.0

	MinSpeed = 1
	MaxSpeed = 1000

	MinWorkers = 1
	MaxWorkers = 64
)

// TickInterval converts the configured speed to a duration
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Speed) * time.Millisecond
}
