package config

import (
	"os"
	"testing"
)

func TestDefaultDataDirXDGOverride(t *testing.T) {
	original := os.Getenv("XDG_DATA_HOME")
	os.Setenv("XDG_DATA_HOME", "/custom/data")
	t.Cleanup(func() {
		if original != "" {
			os.Setenv("XDG_DATA_HOME", original)
		} else {
			os.Unsetenv("XDG_DATA_HOME")
		}
	})

	if got := DefaultDataDir(); got != "/custom/data/stamp" {
		t.Fatalf("got %s", got)
	}
}

func TestDefaultDataDirNonEmptyAndStable(t *testing.T) {
	first := DefaultDataDir()
	if first == "" {
		t.Fatalf("expected non-empty data dir")
	}
	if second := DefaultDataDir(); second != first {
		t.Fatalf("inconsistent results: %s vs %s", first, second)
	}
}

func TestIsDir(t *testing.T) {
	if !isDir(".") {
		t.Fatalf("current directory should be a dir")
	}
	if isDir("/non/existent/path/that/does/not/exist") {
		t.Fatalf("missing path should not be a dir")
	}
}
