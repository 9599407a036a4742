// Package config loads the application settings from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-backends/engine/platform"
)

const DefaultPath = "anima.toml"

const (
	BackendNull    = "null"
	BackendDesktop = "desktop"
)

type AppConfig struct {
	// Backend selects the platform: "null" or "desktop".
	Backend  string                `toml:"backend"`
	Window   platform.WindowConfig `toml:"window"`
	Log      LogConfig             `toml:"log"`
	Audio    AudioConfig           `toml:"audio"`
	Graphics GraphicsConfig        `toml:"graphics"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type AudioConfig struct {
	SampleRate int     `toml:"sample_rate"`
	Volume     float32 `toml:"volume"`
	// BufferMS is the length of the output buffer in milliseconds.
	BufferMS int `toml:"buffer_ms"`
}

type GraphicsConfig struct {
	ClearColor [4]float32 `toml:"clear_color"`
}

func Default() AppConfig {
	return AppConfig{
		Backend: BackendDesktop,
		Window:  platform.DefaultWindowConfig(),
		Log: LogConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     1.0,
			BufferMS:   100,
		},
		Graphics: GraphicsConfig{
			ClearColor: [4]float32{0.1, 0.1, 0.15, 1.0},
		},
	}
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	return Parse(data)
}

func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	switch c.Backend {
	case BackendNull, BackendDesktop:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid audio sample rate %d", c.Audio.SampleRate)
	}
	if c.Audio.BufferMS <= 0 {
		return fmt.Errorf("invalid audio buffer length %dms", c.Audio.BufferMS)
	}
	return nil
}
