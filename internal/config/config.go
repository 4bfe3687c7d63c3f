package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EngineConfig configures the indicator engine.
type EngineConfig struct {
	// Version is the engine version the file was written for. Empty skips the check.
	Version string `yaml:"version" json:"version,omitempty" jsonschema:"title=Engine Version"`
	// LogLevel is the minimum level of the engine diagnostics.
	LogLevel string `yaml:"log_level" json:"log_level" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error" validate:"omitempty,oneof=debug info warn error"`
	// Defaults overrides the default parameters of individual indicators, keyed by indicator id.
	Defaults map[string]types.ParameterSet `yaml:"defaults" json:"defaults" jsonschema:"title=Default Parameters"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		LogLevel: "info",
		Defaults: map[string]types.ParameterSet{},
	}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return ParseConfig(data)
}

// ParseConfig parses and validates a YAML config document. An empty document yields
// the default configuration.
func ParseConfig(data []byte) (*EngineConfig, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse engine config", err)
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the EngineConfig struct and the indicator ids of Defaults.
func (c *EngineConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid engine config", err)
	}

	if c.Version != "" {
		if err := version.CheckCompatibility(version.GetVersion(), c.Version); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, "incompatible engine config", err)
		}
	}

	for id := range c.Defaults {
		if _, err := types.ParseIndicatorType(id); err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid defaults entry %q", id)
		}
	}

	return nil
}

// IndicatorDefaults returns Defaults keyed by canonical indicator type. Two ids that
// resolve to the same type (for example "bb" and "bollinger") are rejected.
func (c *EngineConfig) IndicatorDefaults() (map[types.IndicatorType]types.ParameterSet, error) {
	out := make(map[types.IndicatorType]types.ParameterSet, len(c.Defaults))

	for id, params := range c.Defaults {
		indicatorType, err := types.ParseIndicatorType(id)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid defaults entry %q", id)
		}

		if _, exists := out[indicatorType]; exists {
			return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "duplicate defaults for %s", indicatorType)
		}

		out[indicatorType] = params
	}

	return out, nil
}
