// Package config loads and saves growthsim preferences and default scenarios.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/growthsim/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all growthsim configuration.
type Config struct {
	General    GeneralConfig       `toml:"general"`
	ScenarioA  model.ScenarioInput `toml:"scenario_a"`
	ScenarioB  model.ScenarioInput `toml:"scenario_b"`
	Appearance AppearanceConfig    `toml:"appearance"`
	Server     ServerConfig        `toml:"server"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Compare   bool   `toml:"compare"`
	ExportDir string `toml:"export_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	RunsBuffer int    `toml:"runs_buffer"`
}

// DefaultServerAddr is the loopback address the API listens on by default.
const DefaultServerAddr = "127.0.0.1:8787"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ScenarioA: model.DefaultScenario(),
		ScenarioB: model.DefaultScenario(),
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:       DefaultServerAddr,
			RunsBuffer: 200,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "growthsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "growthsim")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Scenarios read from disk are validated so a hand-edited file cannot
// smuggle out-of-range inputs into the simulator.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.ScenarioA.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config scenario_a: %w", err)
	}
	if err := cfg.ScenarioB.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config scenario_b: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// GetServerAddr returns the API listen address from env var or config, in that order.
func GetServerAddr(cfg Config) string {
	if addr := os.Getenv("GROWTHSIM_SERVER_ADDR"); addr != "" {
		return addr
	}
	if cfg.Server.Addr != "" {
		return cfg.Server.Addr
	}
	return DefaultServerAddr
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
