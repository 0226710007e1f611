// Package config provides configuration management.
//
// Configuration is read, lowest priority first, from built-in defaults, an
// optional config file, a .env file and REFINE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"refine-calc/internal/errors"
	"refine-calc/internal/logging"
)

// EnvPrefix is the prefix of environment variable overrides
const EnvPrefix = "REFINE"

// Config is the main application configuration
type Config struct {
	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging" mapstructure:"logging"`

	// Calculation contains engine policy settings
	Calculation CalculationConfig `json:"calculation" yaml:"calculation" mapstructure:"calculation"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`

	// Recipes contains recipe book settings
	Recipes RecipesConfig `json:"recipes" yaml:"recipes" mapstructure:"recipes"`
}

// CalculationConfig selects the engine policies
type CalculationConfig struct {
	// Remainder is the shortfall convention for uneven quantities
	Remainder string `json:"remainder" yaml:"remainder" mapstructure:"remainder" validate:"oneof=complement modulus"`

	// Depth is single-tier or transitive resolution
	Depth string `json:"depth" yaml:"depth" mapstructure:"depth" validate:"oneof=single transitive"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=cli json yaml markdown"`

	// NoColor disables terminal colors
	NoColor bool `json:"no_color" yaml:"no_color" mapstructure:"no_color"`

	// ShowCrafted lists crafted supply after the shopping list
	ShowCrafted bool `json:"show_crafted" yaml:"show_crafted" mapstructure:"show_crafted"`
}

// RecipesConfig points at an optional HCL recipe book
type RecipesConfig struct {
	// Path is the recipe book file; empty uses the built-in tables
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Calculation: CalculationConfig{
			Remainder: "complement",
			Depth:     "single",
		},
		Output: OutputConfig{
			Format: "cli",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)
	v.SetDefault("calculation.remainder", d.Calculation.Remainder)
	v.SetDefault("calculation.depth", d.Calculation.Depth)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.no_color", d.Output.NoColor)
	v.SetDefault("output.show_crafted", d.Output.ShowCrafted)
	v.SetDefault("recipes.path", d.Recipes.Path)
}

// Load loads configuration. An empty path searches for refine-calc.{yaml,json,toml}
// in the working directory and $HOME/.refine-calc; a missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("refine-calc")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.refine-calc")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, errors.Config("failed to read config file", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("failed to unmarshal config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its validation tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Config("invalid configuration", formatValidationError(err))
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Namespace(),
			e.Tag(),
			e.Value(),
		))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
