package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/srodi/hostpulse/pkg/types"
)

// Duration wraps time.Duration so yaml values like "1s" or "250ms" parse.
type Duration time.Duration

// UnmarshalYAML parses the scalar with time.ParseDuration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in its canonical string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config holds the tunables read from the optional yaml config file.
// Flags override whatever is loaded here.
type Config struct {
	Interval  Duration `yaml:"interval"`
	Settle    Duration `yaml:"settle"`
	TopN      int      `yaml:"top_n"`
	ScanLimit int      `yaml:"scan_limit"`
	DiskPath  string   `yaml:"disk_path"`
	Plain     bool     `yaml:"plain"`
}

// Default returns the built-in settings used when no file is present.
func Default() *Config {
	return &Config{
		Interval:  Duration(types.DefaultInterval),
		Settle:    Duration(types.DefaultSettle),
		TopN:      types.DefaultTopN,
		ScanLimit: types.DefaultScanLimit,
		DiskPath:  "/",
	}
}

// Load reads path, falling back to defaults if the file does not exist.
// Missing or non-positive fields are clamped back to their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Interval <= 0 {
		cfg.Interval = Duration(types.DefaultInterval)
	}
	if cfg.Settle <= 0 {
		cfg.Settle = Duration(types.DefaultSettle)
	}
	if cfg.TopN <= 0 {
		cfg.TopN = types.DefaultTopN
	}
	if cfg.ScanLimit <= 0 {
		cfg.ScanLimit = types.DefaultScanLimit
	}
	if cfg.DiskPath == "" {
		cfg.DiskPath = "/"
	}
	return cfg, nil
}
