package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "FINTRACK"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		File          string `mapstructure:"file" yaml:"file"`
		BackupEnabled bool   `mapstructure:"backup_enabled" yaml:"backup_enabled"`
	} `mapstructure:"data" yaml:"data"`

	Budget struct {
		WarningThreshold float64 `mapstructure:"warning_threshold" yaml:"warning_threshold"`
	} `mapstructure:"budget" yaml:"budget"`

	Auth struct {
		HashPasswords bool `mapstructure:"hash_passwords" yaml:"hash_passwords"`
	} `mapstructure:"auth" yaml:"auth"`

	Report struct {
		Format   string `mapstructure:"format" yaml:"format"`
		Currency string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"report" yaml:"report"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then a config.yaml file, then FINTRACK_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fintrack")
	v.AddConfigPath(".fintrack")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// LOG_LEVEL is honored when the prefixed variable is not set.
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level environment variables: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing overrides the defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Defaults always decode.
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.file", "users.txt")
	v.SetDefault("data.backup_enabled", false)

	v.SetDefault("budget.warning_threshold", 0.90)

	v.SetDefault("auth.hash_passwords", false)

	v.SetDefault("report.format", validation.FormatText)
	v.SetDefault("report.currency", "$")

	v.SetDefault("csv.delimiter", ",")
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Data.File) == "" {
		return fmt.Errorf("data.file must not be empty")
	}

	if config.Budget.WarningThreshold <= 0.0 || config.Budget.WarningThreshold > 1.0 {
		return fmt.Errorf("budget.warning_threshold must be greater than 0.0 and at most 1.0, got: %f", config.Budget.WarningThreshold)
	}

	if err := validation.IsValidOutputFormat(config.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}
