package trellis

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig configures an Application. It is usually read from trellis.toml.
type AppConfig struct {
	// Window document loaded into the main window (JSON or TOML)
	Window string `toml:"window"`
	// Theme file applied to every window
	Theme string `toml:"theme"`
	// Font path or builtin name ("goregular", "gomono", ...). Empty uses the
	// basic bitmap face.
	Font     string  `toml:"font"`
	FontSize float32 `toml:"font_size"`

	Title     string  `toml:"title"`
	Width     float32 `toml:"width"`
	Height    float32 `toml:"height"`
	Resizable bool    `toml:"resizable"`

	// TitleBar draws a title bar with a close button inside new windows
	TitleBar bool `toml:"title_bar"`

	// Frames per second Run drives Update and DoPaint at
	FrameRate int `toml:"frame_rate"`

	// Debug enables debug logging for the application and the control tree
	Debug bool `toml:"debug"`
}

// DefaultAppConfig returns sensible defaults for a new application window.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		FontSize:  13,
		Title:     "Trellis",
		Width:     640,
		Height:    480,
		Resizable: true,
		FrameRate: 60,
	}
}

// LoadConfig reads the application configuration from path.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (AppConfig, error) {
	config := DefaultAppConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	// Relative document paths are resolved against the config file
	dir := filepath.Dir(path)
	config.Window = resolvePath(dir, config.Window)
	config.Theme = resolvePath(dir, config.Theme)
	if filepath.Ext(config.Font) != "" {
		config.Font = resolvePath(dir, config.Font)
	}

	if config.FrameRate <= 0 {
		config.FrameRate = DefaultAppConfig().FrameRate
	}
	return config, nil
}

// SaveConfig writes the configuration to path as TOML.
func SaveConfig(path string, config AppConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
