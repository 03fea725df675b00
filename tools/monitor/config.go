package monitor

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the monitor configuration
type Config struct {
	Device       string   `toml:"device"`
	Baud         int      `toml:"baud"`
	Encoding     string   `toml:"encoding"`
	Color        string   `toml:"color"`
	Timestamps   bool     `toml:"timestamps"`
	Tags         []string `toml:"tags"`
	Capture      string   `toml:"capture"`
	ExitOnAssert bool     `toml:"exit_on_assert"`
	Command      string   `toml:"command"`
}

// DefaultConfig returns a config matching the usual firmware serial setup
func DefaultConfig() *Config {
	return &Config{
		Baud:     115200,
		Encoding: "utf-8",
		Color:    "auto",
	}
}

// Load loads configuration from a TOML file over the defaults.
// If path is empty, returns default config
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("%s: unknown keys %v", path, keys)
	}

	return cfg, nil
}
