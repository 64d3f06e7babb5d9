package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds the application-level defaults for the CLI and server.
// Profile data never lives here; settings only tune how a run behaves.
type Settings struct {
	Engine EngineSettings `toml:"engine"`
	Output OutputSettings `toml:"output"`
	Server ServerSettings `toml:"server"`
}

// EngineSettings tunes the calculation run.
type EngineSettings struct {
	MonteCarloTrials int   `toml:"monte_carlo_trials"`
	Seed             int64 `toml:"seed"`
}

// OutputSettings selects the default report format and destination.
type OutputSettings struct {
	Format string `toml:"format"`
	Path   string `toml:"path,omitempty"`
}

// ServerSettings configures the HTTP compute service.
type ServerSettings struct {
	Listen string `toml:"listen"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Engine: EngineSettings{
			MonteCarloTrials: 1000,
			Seed:             42,
		},
		Output: OutputSettings{
			Format: "console",
		},
		Server: ServerSettings{
			Listen: ":8080",
		},
	}
}

// SettingsDir returns the XDG-compliant settings directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "planwise")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "settings.toml")
}

// LoadSettings reads settings from path, or from the default location when
// path is empty. A missing file yields the defaults without error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	if path == "" {
		path = SettingsPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing settings: %w", err)
	}

	return settings, nil
}

// SaveSettings writes settings to path, or to the default location when path
// is empty, creating the directory as needed.
func SaveSettings(settings Settings, path string) error {
	if path == "" {
		path = SettingsPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(settings); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return nil
}
