package config

import (
	"os"
	"strconv"
	"time"
)

// FromEnv overlays STAMP_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("STAMP_MACHINE_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MachineID = n
		}
	}
	if v := os.Getenv("STAMP_HTTP"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("STAMP_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("STAMP_CHECKPOINT_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CheckpointInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("STAMP_MAX_BATCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxBatch = n
		}
	}
	if v := os.Getenv("STAMP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STAMP_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("STAMP_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
