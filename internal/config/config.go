package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when --config is not given.
const DefaultConfigPath = "playground.yaml"

// Config holds all playground configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Guessing game
	Guess GuessConfig `yaml:"guess"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal presentation
	UX UXConfig `yaml:"ux"`

	// Snippet interpreter
	Sandbox SandboxConfig `yaml:"sandbox"`
}

// GuessConfig configures the guessing game.
type GuessConfig struct {
	Min  uint32 `yaml:"min"`  // inclusive lower bound of the secret number
	Max  uint32 `yaml:"max"`  // inclusive upper bound of the secret number
	Seed uint64 `yaml:"seed"` // 0 = seeded by the OS
}

// SandboxConfig configures the yaegi snippet runner.
type SandboxConfig struct {
	Timeout string `yaml:"timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "playground",
		Version: "0.1.0",

		Guess: GuessConfig{
			Min: 1,
			Max: 100,
		},

		Logging: LoggingConfig{
			Level: "warn",
		},

		UX: UXConfig{
			Theme:    ThemeAuto,
			WordWrap: 80,
		},

		Sandbox: SandboxConfig{
			Timeout: "5s",
		},
	}
}

// Load reads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PLAYGROUND_GUESS_MIN"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid PLAYGROUND_GUESS_MIN %q: %w", v, err)
		}
		c.Guess.Min = uint32(n)
	}
	if v := os.Getenv("PLAYGROUND_GUESS_MAX"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid PLAYGROUND_GUESS_MAX %q: %w", v, err)
		}
		c.Guess.Max = uint32(n)
	}
	if v := os.Getenv("PLAYGROUND_GUESS_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid PLAYGROUND_GUESS_SEED %q: %w", v, err)
		}
		c.Guess.Seed = n
	}
	if v := os.Getenv("PLAYGROUND_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if os.Getenv("PLAYGROUND_DARK_MODE") == "1" {
		c.UX.Theme = ThemeDark
	}
	return nil
}

// GetSandboxTimeout returns the snippet timeout as a duration.
func (c *Config) GetSandboxTimeout() time.Duration {
	d, err := time.ParseDuration(c.Sandbox.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// Validate checks the configuration for values no command can run with.
func (c *Config) Validate() error {
	if c.Guess.Min > c.Guess.Max {
		return fmt.Errorf("invalid guess range: min %d is greater than max %d", c.Guess.Min, c.Guess.Max)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.UX.Theme {
	case ThemeAuto, ThemeLight, ThemeDark, "":
	default:
		return fmt.Errorf("invalid ux theme: %s (valid: auto, light, dark)", c.UX.Theme)
	}
	return nil
}
