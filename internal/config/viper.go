package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"openclear/mx-message/internal/validation"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Validation struct {
		// Profile selects a named parser configuration: "default",
		// "fail-fast" or "lenient".
		Profile string `mapstructure:"profile" yaml:"profile"`
		// ValidateOptionalFields overrides the profile's optional-field
		// gating when set.
		ValidateOptionalFields *bool `mapstructure:"validate_optional_fields" yaml:"validate_optional_fields"`
	} `mapstructure:"validation" yaml:"validation"`

	Report struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.mx-message")
	v.AddConfigPath(".mx-message")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("validation.profile", "default")
	v.SetDefault("report.directory", ".")
}

// ConfigureLoggingFromConfig applies the configuration to the global logger
func ConfigureLoggingFromConfig(cfg *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", cfg.Log.Level)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(cfg.Log.Format) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return Logger
}

// ParserConfig resolves the validation section into a validation.ParserConfig.
func (c *Config) ParserConfig() (*validation.ParserConfig, error) {
	pc, err := ParserConfigForProfile(c.Validation.Profile)
	if err != nil {
		return nil, err
	}
	if c.Validation.ValidateOptionalFields != nil {
		pc.ValidateOptionalFields = *c.Validation.ValidateOptionalFields
	}
	return pc, nil
}

// ParserConfigForProfile maps a profile name to a parser configuration.
func ParserConfigForProfile(profile string) (*validation.ParserConfig, error) {
	switch strings.ToLower(profile) {
	case "", "default":
		return validation.DefaultConfig(), nil
	case "fail-fast", "failfast":
		return validation.FailFastConfig(), nil
	case "lenient":
		return validation.LenientConfig(), nil
	}
	return nil, fmt.Errorf("unknown validation profile %q", profile)
}
