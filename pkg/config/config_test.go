package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/srodi/hostpulse/pkg/types"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hostpulse.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Duration(cfg.Interval) != types.DefaultInterval {
		t.Fatalf("unexpected interval: %v", cfg.Interval)
	}
	if time.Duration(cfg.Settle) != types.DefaultSettle {
		t.Fatalf("unexpected settle: %v", cfg.Settle)
	}
	if cfg.TopN != types.DefaultTopN || cfg.ScanLimit != types.DefaultScanLimit || cfg.DiskPath != "/" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadParsesDurationsAndFields(t *testing.T) {
	path := writeConfig(t, `
interval: 5s
settle: 250ms
top_n: 3
scan_limit: 50
disk_path: /var
plain: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Duration(cfg.Interval) != 5*time.Second {
		t.Fatalf("unexpected interval: %v", cfg.Interval)
	}
	if time.Duration(cfg.Settle) != 250*time.Millisecond {
		t.Fatalf("unexpected settle: %v", cfg.Settle)
	}
	if cfg.TopN != 3 || cfg.ScanLimit != 50 || cfg.DiskPath != "/var" || !cfg.Plain {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadClampsNonPositiveValues(t *testing.T) {
	path := writeConfig(t, `
top_n: -1
scan_limit: 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TopN != types.DefaultTopN || cfg.ScanLimit != types.DefaultScanLimit {
		t.Fatalf("expected clamped defaults, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	path := writeConfig(t, "interval: soon\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected malformed duration to fail")
	}
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := writeConfig(t, "interval: [1s\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected malformed yaml to fail")
	}
}
