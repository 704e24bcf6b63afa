package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"epctl/pkg/endpoints"
	"epctl/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Default region used when a command is invoked without one
	DefaultRegion string `mapstructure:"default_region" yaml:"default_region"`

	// Partition whose services are listed and picked when none is named;
	// empty means the catalog's default partition
	DefaultPartition string `mapstructure:"default_partition" yaml:"default_partition,omitempty"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig represents output formatting configuration
type OutputConfig struct {
	// Default output format (json or table)
	Format string `mapstructure:"format" yaml:"format"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	// Log directory path
	Directory string `mapstructure:"directory" yaml:"directory"`

	// Enable file logging
	FileLogging bool `mapstructure:"file_logging" yaml:"file_logging"`

	// Log level (debug, info, warn, error)
	Level string `mapstructure:"level" yaml:"level"`
}

var (
	// Global configuration instance
	cfg *Config
)

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewConfigError("unable to find home directory", err)
	}
	return filepath.Join(home, ".epctl.yaml"), nil
}

// Load loads the configuration from file and environment variables
func Load(configFile string) error {
	cfg = &Config{}

	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".epctl")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("EPCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults apply
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return errors.NewConfigError("failed to read configuration file", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return errors.NewConfigError("failed to parse configuration", err)
	}

	return Validate(cfg)
}

// Get returns the global configuration, loading defaults if nothing has been
// loaded yet.
func Get() *Config {
	if cfg == nil {
		if err := Load(""); err != nil {
			cfg = defaultConfig()
		}
	}
	return cfg
}

// Reset clears the loaded configuration. Used by tests.
func Reset() {
	cfg = nil
	viper.Reset()
}

// Exists reports whether a config file is present at the default location.
func Exists() bool {
	path, err := DefaultPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Validate checks configuration values against the endpoint catalog.
func Validate(c *Config) error {
	if c.DefaultRegion != "" {
		if _, err := endpoints.ExpandRegion(c.DefaultRegion); err != nil {
			return errors.NewConfigError(fmt.Sprintf("default_region %q is not a known region or region code", c.DefaultRegion), err)
		}
	}
	if c.DefaultPartition != "" {
		if endpoints.Default().ServiceNames(c.DefaultPartition) == nil {
			return errors.NewConfigError(fmt.Sprintf("default_partition %q is not in the endpoint catalog", c.DefaultPartition), nil)
		}
	}
	switch c.Output.Format {
	case "", "json", "table":
	default:
		return errors.NewConfigError(fmt.Sprintf("output format %q is not supported (json, table)", c.Output.Format), nil)
	}
	return nil
}

// Save writes the configuration to the given path as YAML.
func Save(c *Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.NewConfigError("failed to serialize configuration", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.NewConfigError("failed to write configuration file", err)
	}
	return nil
}

// New returns a configuration populated with defaults, e.g. for writing an
// initial config file.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		DefaultRegion: "us-east-1",
		Output:        OutputConfig{Format: "json"},
		Logging: LoggingConfig{
			FileLogging: true,
			Level:       "info",
		},
	}
}

func setDefaults() {
	viper.SetDefault("default_region", "us-east-1")
	viper.SetDefault("output.format", "json")
	viper.SetDefault("logging.file_logging", true)
	viper.SetDefault("logging.level", "info")
}
