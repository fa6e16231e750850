package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendNative  = "native"
	BackendCommand = "command"

	DefaultOutputFile = "collected_clipboard.txt"
)

// Config holds the tunables that are not part of the command line.
type Config struct {
	PollInterval int `yaml:"poll_interval_ms"`
	MaxItemSize  int `yaml:"max_item_size_bytes"` // 0 disables the limit

	ClipboardBackend  string `yaml:"clipboard_backend"`
	DefaultOutputFile string `yaml:"default_output_file"`

	// Rebuild the seen set from the output file before a file-mode run.
	SeedFromFile bool `yaml:"seed_from_file"`
}

func Default() *Config {
	return &Config{
		PollInterval: 1000,
		MaxItemSize:  0,

		ClipboardBackend:  BackendNative,
		DefaultOutputFile: DefaultOutputFile,

		SeedFromFile: false,
	}
}

func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Return default config if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// PollEvery returns the poll interval as a duration.
func (c *Config) PollEvery() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}

func (c *Config) validate() error {
	if c.PollInterval <= 0 {
		c.PollInterval = 1000
	}
	if c.MaxItemSize < 0 {
		c.MaxItemSize = 0
	}
	if c.DefaultOutputFile == "" {
		c.DefaultOutputFile = DefaultOutputFile
	}
	switch c.ClipboardBackend {
	case "":
		c.ClipboardBackend = BackendNative
	case BackendNative, BackendCommand:
	default:
		return fmt.Errorf("unknown clipboard backend %q: must be %q or %q", c.ClipboardBackend, BackendNative, BackendCommand)
	}
	return nil
}
