// Package config loads the command-line tool's settings from file,
// environment and flags.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/fulgidus/mathutils/internal/logging"
)

// EnvPrefix is prepended to environment overrides, e.g. MATHUTILS_LOG_LEVEL.
const EnvPrefix = "MATHUTILS"

// OutputFormats lists the accepted result formats.
var OutputFormats = []string{"text", "json", "yaml"}

// Config represents the complete tool configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how results are written to stdout
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of: %s", strings.Join(validLogLevels, ", "))
	}

	if !slices.Contains(logging.Formats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of: %s", strings.Join(logging.Formats, ", "))
	}

	if !slices.Contains(OutputFormats, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("output.format must be one of: %s", strings.Join(OutputFormats, ", "))
	}

	return nil
}

// Setup points v at the config file and environment. An empty cfgFile
// searches for mathutils.yaml in the working directory and ./configs.
func Setup(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.SetConfigName("mathutils")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load registers defaults on v, reads the config file if there is one and
// unmarshals the result. Finding no file on the search path is not an error,
// a missing file set with SetConfigFile is.
func Load(v *viper.Viper) (*Config, error) {
	defaults := DefaultConfig()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("output.format", defaults.Output.Format)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// only a searched-for file is optional; an explicit path must exist
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
