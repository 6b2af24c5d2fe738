package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Simulation SimulationConfig `toml:"simulation"`
	Controls   ControlsConfig   `toml:"controls"`
	Logging    LoggingConfig    `toml:"logging"`
	Debug      DebugConfig      `toml:"debug"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type SimulationConfig struct {
	TPS int `toml:"tps"` // fixed simulation steps per second
}

// ControlsConfig names keys with ebiten key names. An empty movement key keeps
// the binding from the player prefab.
type ControlsConfig struct {
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Pause string `toml:"pause"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DebugConfig struct {
	Physics   bool `toml:"physics"` // draw collider outlines
	HUD       bool `toml:"hud"`
	HotReload bool `toml:"hot_reload"`
}

// Load reads the toml file at path over the defaults. A missing file is not an
// error; the defaults are returned as is.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Simulation.TPS <= 0 {
		return fmt.Errorf("simulation tps must be positive, got %d", c.Simulation.TPS)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging format %q: want console or json", c.Logging.Format)
	}
	return nil
}

// Dt is the simulated seconds of one fixed step.
func (s SimulationConfig) Dt() float64 {
	return 1.0 / float64(s.TPS)
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "magnetgun",
			Width:  1280,
			Height: 720,
		},
		Simulation: SimulationConfig{
			TPS: 60,
		},
		Controls: ControlsConfig{
			Pause: "Escape",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Debug: DebugConfig{
			HUD: true,
		},
	}
}
