package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds the user preferences read from settings.toml. Environment
// variables named in the env tags take precedence, see ApplyEnv.
type Settings struct {
	General    GeneralSettings    `toml:"general"`
	Server     ServerSettings     `toml:"server"`
	Appearance AppearanceSettings `toml:"appearance"`
}

// GeneralSettings holds CLI defaults.
type GeneralSettings struct {
	DefaultFormat string `toml:"default_format" env:"LIFEPLAN_FORMAT"`
	ScenarioFile  string `toml:"scenario_file" env:"LIFEPLAN_SCENARIO_FILE"`
}

// ServerSettings holds HTTP API settings.
type ServerSettings struct {
	Addr         string `toml:"addr" env:"LIFEPLAN_ADDR"`
	MaxBodyBytes int    `toml:"max_body_bytes" env:"LIFEPLAN_MAX_BODY_BYTES"`
}

// AppearanceSettings holds console rendering settings.
type AppearanceSettings struct {
	ChartHeight int `toml:"chart_height"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			DefaultFormat: "console",
		},
		Server: ServerSettings{
			Addr:         ":8080",
			MaxBodyBytes: 256 << 10,
		},
		Appearance: AppearanceSettings{
			ChartHeight: 12,
		},
	}
}

// Dir returns the XDG-compliant settings directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lifeplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lifeplan")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(Dir(), "settings.toml")
}

// LoadSettings reads the settings file, returning defaults if it doesn't exist.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from path on top of the defaults.
func LoadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	return s, nil
}

// SaveSettings writes the settings to the default location.
func SaveSettings(s Settings) error {
	return SaveSettingsTo(s, SettingsPath())
}

// SaveSettingsTo writes the settings to path, creating its directory.
func SaveSettingsTo(s Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(s)
}

// SettingsExist returns true if a settings file exists on disk.
func SettingsExist() bool {
	_, err := os.Stat(SettingsPath())
	return err == nil
}
