package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rzbill/stamp/pkg/id"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MachineID != 0 {
		t.Fatalf("default machine id")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("default http addr")
	}
	if cfg.MaxBatch != 1000 {
		t.Fatalf("default max batch")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateMachineID(t *testing.T) {
	cfg := Default()
	cfg.MachineID = id.MaxMachineID + 1
	if err := cfg.Validate(); !errors.Is(err, id.ErrInvalidMachineID) {
		t.Fatalf("want ErrInvalidMachineID, got %v", err)
	}
	cfg.MachineID = -1
	if err := cfg.Validate(); !errors.Is(err, id.ErrInvalidMachineID) {
		t.Fatalf("want ErrInvalidMachineID, got %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "stamp.json")
	data := []byte(`{"machineId":42,"httpAddr":":9090","checkpointIntervalMs":250,"log":{"level":"debug","format":"json"}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MachineID != 42 {
		t.Fatalf("machine id: %d", cfg.MachineID)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("http addr: %s", cfg.HTTPAddr)
	}
	if cfg.CheckpointInterval != 250*time.Millisecond {
		t.Fatalf("checkpoint interval: %v", cfg.CheckpointInterval)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log config: %+v", cfg.Log)
	}
	// Unspecified keys keep defaults.
	if cfg.MaxBatch != 1000 {
		t.Fatalf("max batch default lost: %d", cfg.MaxBatch)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("STAMP_MACHINE_ID", "7")
	os.Setenv("STAMP_HTTP", ":7070")
	os.Setenv("STAMP_MAX_BATCH", "50")
	os.Setenv("STAMP_LOG_LEVEL", "warn")
	t.Cleanup(func() {
		os.Unsetenv("STAMP_MACHINE_ID")
		os.Unsetenv("STAMP_HTTP")
		os.Unsetenv("STAMP_MAX_BATCH")
		os.Unsetenv("STAMP_LOG_LEVEL")
	})
	FromEnv(&cfg)
	if cfg.MachineID != 7 {
		t.Fatalf("env machine id")
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("env http addr")
	}
	if cfg.MaxBatch != 50 {
		t.Fatalf("env max batch")
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("env log level")
	}
}
