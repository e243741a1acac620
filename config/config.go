//file: config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. GALGEN_LOGGING_LEVEL.
const EnvPrefix = "GALGEN"

type Config struct {
	Logging  LogConfig           `mapstructure:"logging" json:"logging" yaml:"logging"`
	Defaults DefaultsConfig      `mapstructure:"defaults" json:"defaults" yaml:"defaults"`
	Formats  map[string][]string `mapstructure:"formats" json:"formats" yaml:"formats"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" json:"level" yaml:"level"`                // debug, info, warn, error
	OutputPath string `mapstructure:"outputPath" json:"outputPath" yaml:"outputPath"` // file path, "stdout" or "stderr"
	Encoding   string `mapstructure:"encoding" json:"encoding" yaml:"encoding"`       // json or console
}

// DefaultsConfig holds the answers offered when the user just hits return.
type DefaultsConfig struct {
	ToolVersion  string `mapstructure:"toolVersion" json:"toolVersion" yaml:"toolVersion"`
	OutputFormat string `mapstructure:"outputFormat" json:"outputFormat" yaml:"outputFormat"` // yaml or json
}

// Load reads configuration using Viper. An empty path searches for
// galgen.{yaml,json,toml} in the working directory and in
// $HOME/.config/galgen; finding nothing is not an error. Flags in fs, if
// non-nil, override file and environment values.
func Load(path string, fs *flag.FlagSet) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("galgen")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "galgen"))
		}
	}

	// Environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if fs != nil {
		if err := BindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	// Registering every key lets AutomaticEnv see variables for keys the
	// file does not mention.
	var defaults Config
	setDefaults(&defaults)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.outputPath", defaults.Logging.OutputPath)
	v.SetDefault("logging.encoding", defaults.Logging.Encoding)
	v.SetDefault("defaults.toolVersion", defaults.Defaults.ToolVersion)
	v.SetDefault("defaults.outputFormat", defaults.Defaults.OutputFormat)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":     "logging.level",
	"log-encoding":  "logging.encoding",
	"log-output":    "logging.outputPath",
	"tool-version":  "defaults.toolVersion",
	"output-format": "defaults.outputFormat",
}

// BindFlags binds the known flags present in fs to their config keys.
// Only flags the user actually set take precedence over file values.
func BindFlags(v *viper.Viper, fs *flag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	// Logging defaults: an interactive tool keeps stdout for the user.
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.OutputPath == "" {
		cfg.Logging.OutputPath = "stderr"
	}
	if cfg.Logging.Encoding == "" {
		cfg.Logging.Encoding = "console"
	}

	if cfg.Defaults.ToolVersion == "" {
		cfg.Defaults.ToolVersion = "0.1"
	}
	if cfg.Defaults.OutputFormat == "" {
		cfg.Defaults.OutputFormat = "yaml"
	}
}

// validateConfig performs validation of all configuration values
func validateConfig(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.Logging.Level)
	}

	switch cfg.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log encoding: %s", cfg.Logging.Encoding)
	}

	switch cfg.Defaults.OutputFormat {
	case "yaml", "json":
	default:
		return fmt.Errorf("invalid output format: %s", cfg.Defaults.OutputFormat)
	}

	for format, exts := range cfg.Formats {
		if strings.TrimSpace(format) == "" {
			return fmt.Errorf("format name cannot be empty")
		}
		for _, ext := range exts {
			if strings.ContainsAny(ext, " /\\") {
				return fmt.Errorf("format %s: invalid extension %q", format, ext)
			}
		}
	}

	return nil
}
