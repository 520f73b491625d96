package meta

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config collects the settings shared by every command. Flags given on the
// command line override the values read from a file.
type Config struct {
	// Strategy names the evaluator: minmax, cached, threaded, pooled, blocking or random.
	Strategy string `yaml:"strategy"`

	// Depth is the fixed search depth.
	Depth int `yaml:"depth"`

	// Workers is the size of the worker pool used by the pooled strategy.
	Workers int `yaml:"workers"`

	// Heartbeat is the liveness log interval, 0 disables it.
	Heartbeat time.Duration `yaml:"heartbeat"`

	Render   bool   `yaml:"render"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:  "minmax",
		Depth:     DEFAULT_DEPTH,
		Workers:   DEFAULT_WORKERS,
		Heartbeat: 0,
		Render:    false,
		LogLevel:  "info",
	}
}

// Load reads a YAML file on top of the defaults
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("%w: negative depth %d", ErrInvalidConfig, c.Depth)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: pool needs at least one worker, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Heartbeat < 0 {
		return fmt.Errorf("%w: negative heartbeat %s", ErrInvalidConfig, c.Heartbeat)
	}
	return nil
}
