package config

//go:generate go run ../tools/schema-generator

import (
	"fmt"
	"os"
	"time"

	core_config "github.com/grovetools/core/config"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/spec2wsx/internal/capture"
)

// ExtensionName is the key of the spec2wsx section in grove.yml.
const ExtensionName = "spec2wsx"

// ConversionConfig defines how captures are converted.
type ConversionConfig struct {
	// Timezone is the IANA zone capture filenames are recorded in. It decides
	// whether daylight saving applies to a capture's start time.
	// Default: "America/New_York".
	Timezone string `yaml:"timezone,omitempty"`

	// Devices extends the built-in device table. Keys are the device family
	// without hyphens followed by the model, e.g. "WiSpy900x".
	Devices map[string]capture.DeviceModel `yaml:"devices,omitempty"`

	// OutputDir, when set, receives the containers instead of the capture's
	// own directory.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// TextfilePath, when set, receives conversion metrics in the
	// node_exporter textfile format after each run.
	TextfilePath string `yaml:"textfile_path,omitempty"`
}

// Config is the top-level configuration structure for spec2wsx.
type Config struct {
	Conversion ConversionConfig `yaml:"conversion,omitempty"`
	Metrics    MetricsConfig    `yaml:"metrics,omitempty"`
}

// Load reads a standalone YAML configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault reads the spec2wsx extension of the grove configuration. A
// missing configuration yields the defaults.
func LoadDefault() (*Config, error) {
	var cfg Config
	if coreCfg, err := core_config.LoadDefault(); err == nil {
		if err := coreCfg.UnmarshalExtension(ExtensionName, &cfg); err != nil {
			return nil, fmt.Errorf("%s config: %w", ExtensionName, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Conversion.Timezone == "" {
		c.Conversion.Timezone = capture.DefaultTimezone
	}
}

func (c *Config) validate() error {
	if _, err := time.LoadLocation(c.Conversion.Timezone); err != nil {
		return fmt.Errorf("conversion.timezone: %w", err)
	}
	for key, d := range c.Conversion.Devices {
		if d.TypeID < 0 {
			return fmt.Errorf("conversion.devices.%s: type_id must not be negative", key)
		}
	}
	return nil
}

// Location returns the configured capture timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Conversion.Timezone)
}

// DeviceTable returns the built-in device table extended with configured
// devices.
func (c *Config) DeviceTable() capture.DeviceTable {
	return capture.DefaultDevices().With(c.Conversion.Devices)
}
