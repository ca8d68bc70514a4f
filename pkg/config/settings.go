package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/picogrid/planner-tuning/pkg/storage"
	"github.com/picogrid/planner-tuning/pkg/vehicle"
)

// Settings holds how the tuning tool runs: where edits are stored, how they are
// displayed and which vehicle the planner defaults are derived from
type Settings struct {
	Storage  string           `yaml:"storage" mapstructure:"storage"`
	DataDir  string           `yaml:"data_dir,omitempty" mapstructure:"data_dir"`
	Locale   string           `yaml:"locale" mapstructure:"locale"`
	LogLevel string           `yaml:"log_level" mapstructure:"log_level"`
	NoColor  bool             `yaml:"no_color" mapstructure:"no_color"`
	Vehicle  vehicle.Geometry `yaml:"vehicle" mapstructure:"vehicle"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() *Settings {
	return &Settings{
		Storage:  string(storage.BackendFile),
		Locale:   "en",
		LogLevel: "info",
		Vehicle:  vehicle.DefaultGeometry(),
	}
}

// SettingsPath returns the default location of the settings file
func SettingsPath() (string, error) {
	dir, err := storage.DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadSettingsFromFile loads settings from a specific file
func LoadSettingsFromFile(path string) (*Settings, error) {
	// If file doesn't exist, return default settings
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return settings, nil
}

// SaveSettings writes settings to path, creating its directory
func SaveSettings(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetDefaults registers the default settings with v so unset flags, env vars and
// file entries fall back to them
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("storage", d.Storage)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("no_color", d.NoColor)
	v.SetDefault("vehicle.wheel_base", d.Vehicle.WheelBase)
	v.SetDefault("vehicle.max_steer_speed", d.Vehicle.MaxSteerSpeed)
	v.SetDefault("vehicle.half_car_length", d.Vehicle.HalfCarLength)
	v.SetDefault("vehicle.half_car_width", d.Vehicle.HalfCarWidth)
	v.SetDefault("vehicle.rear_axle_pos", d.Vehicle.RearAxlePos)
}

// FromViper decodes and validates the settings resolved by v
func FromViper(v *viper.Viper) (*Settings, error) {
	settings := DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks the storage backend and vehicle geometry
func (s *Settings) Validate() error {
	if _, err := storage.ParseBackend(s.Storage); err != nil {
		return fmt.Errorf("invalid storage setting: %w", err)
	}
	if err := s.Vehicle.Validate(); err != nil {
		return fmt.Errorf("invalid vehicle settings: %w", err)
	}
	return nil
}

// ResolveDataDir returns the configured data directory or the default one
func (s *Settings) ResolveDataDir() (string, error) {
	if s.DataDir != "" {
		return s.DataDir, nil
	}
	return storage.DefaultDataDir()
}

// OpenStore opens the configured StateStore
func (s *Settings) OpenStore() (storage.StateStore, error) {
	backend, err := storage.ParseBackend(s.Storage)
	if err != nil {
		return nil, err
	}

	dir, err := s.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	return storage.Open(backend, dir)
}
