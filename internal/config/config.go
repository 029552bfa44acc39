package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rzbill/stamp/pkg/id"
	"github.com/rzbill/stamp/pkg/log"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// MachineID identifies this instance in issued ids. Must be unique per
	// concurrently running instance and fit the machine-id bit width.
	MachineID int64 `json:"machineId"`
	// HTTPAddr is the API listen address.
	HTTPAddr string `json:"httpAddr"`
	// DataDir holds the durable state store (machine-id claim, issuance
	// high-water mark). Empty selects an OS-specific default.
	DataDir string `json:"dataDir"`
	// CheckpointInterval is how often the issuance high-water mark is
	// persisted.
	CheckpointInterval time.Duration `json:"-"`
	// CheckpointIntervalMs is the JSON-facing form of CheckpointInterval.
	CheckpointIntervalMs int `json:"checkpointIntervalMs"`
	// MaxBatch bounds the count accepted by the batch issue endpoint.
	MaxBatch int `json:"maxBatch"`
	// Log configures the process logger.
	Log log.Config `json:"log"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		MachineID:          0,
		HTTPAddr:           ":8080",
		CheckpointInterval: time.Second,
		MaxBatch:           1000,
		Log:                log.Config{Level: "info", Format: "text"},
	}
}

// Validate checks invariants that would corrupt issued ids.
func (c Config) Validate() error {
	if c.MachineID < 0 || c.MachineID > id.MaxMachineID {
		return fmt.Errorf("%w: %d (want 0..%d)", id.ErrInvalidMachineID, c.MachineID, id.MaxMachineID)
	}
	if c.MaxBatch < 1 {
		return fmt.Errorf("config: maxBatch must be positive, got %d", c.MaxBatch)
	}
	return nil
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.CheckpointIntervalMs > 0 {
		cfg.CheckpointInterval = time.Duration(cfg.CheckpointIntervalMs) * time.Millisecond
	}
	return cfg, nil
}
