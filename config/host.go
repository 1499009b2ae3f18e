package config

import (
	"fmt"

	"github.com/kbukum/pkgbridge/logger"
	"github.com/kbukum/pkgbridge/validation"
	"github.com/kbukum/pkgbridge/version"
)

// HostConfig contains the configuration for a pkgbridge host process.
// Embedders extend it with their own sections.
//
// Example:
//
//	type MyHostConfig struct {
//	    config.HostConfig `yaml:",inline" mapstructure:",squash"`
//	    Cache cache.Config `yaml:"cache" mapstructure:"cache"`
//	}
type HostConfig struct {
	Name          string                    `yaml:"name" mapstructure:"name" validate:"required"`
	Environment   string                    `yaml:"environment" mapstructure:"environment" validate:"required,oneof=development staging production"`
	Version       string                    `yaml:"version" mapstructure:"version"`
	Debug         bool                      `yaml:"debug" mapstructure:"debug"`
	Logging       logger.Config             `yaml:"logging" mapstructure:"logging"`
	Observability ObservabilityConfig       `yaml:"observability" mapstructure:"observability"`
	Providers     map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
}

// ObservabilityConfig controls tracing and metrics export for the host.
type ObservabilityConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"min=0,max=1"`
}

// ProviderConfig holds per-provider settings passed to the provider factory.
type ProviderConfig struct {
	Enabled  bool           `yaml:"enabled" mapstructure:"enabled"`
	Settings map[string]any `yaml:"settings" mapstructure:"settings"`
}

// GetHostConfig returns the base HostConfig.
// When embedded in a larger config struct, this method is promoted
// so the embedding struct automatically satisfies the Config interface.
func (c *HostConfig) GetHostConfig() *HostConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Override this in embedding structs and call c.HostConfig.ApplyDefaults() first.
func (c *HostConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Version == "" {
		c.Version = version.GetShortVersion()
	}
	if c.Observability.SampleRate == 0 {
		c.Observability.SampleRate = 1.0
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration. Tagged fields go through the
// struct validator; cross-field rules that tags cannot express are checked
// here directly.
// Override this in embedding structs and call c.HostConfig.Validate() first.
func (c *HostConfig) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if c.Observability.Enabled && c.Observability.Endpoint == "" {
		return fmt.Errorf("config.observability.endpoint is required when observability is enabled")
	}
	return nil
}

// Config is implemented by any struct embedding HostConfig.
type Config interface {
	GetHostConfig() *HostConfig
	ApplyDefaults()
	Validate() error
}
