package indicator

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// validate caches struct metadata, so one instance is shared by every indicator.
var validate = validator.New()

// labeler is implemented by every indicator config to render its legend arguments.
type labeler interface {
	labelArgs() string
}

// configurable holds the typed defaults of an indicator and turns the loose parameter
// bag of a call into a validated config of type C.
type configurable[C labeler] struct {
	name         types.IndicatorType
	abbreviation string

	mu       sync.RWMutex
	defaults C
}

// Name returns the name of the indicator.
func (c *configurable[C]) Name() types.IndicatorType {
	return c.name
}

// Config replaces the defaults with params applied on top of the current defaults.
func (c *configurable[C]) Config(params types.ParameterSet) error {
	cfg, err := c.resolve(params)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.defaults = cfg
	c.mu.Unlock()

	return nil
}

// Label returns the legend label for the given parameters.
func (c *configurable[C]) Label(params types.ParameterSet) (string, error) {
	cfg, err := c.resolve(params)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s(%s)", c.abbreviation, cfg.labelArgs()), nil
}

// ConfigSchema returns the JSON schema of C with the current defaults filled in.
func (c *configurable[C]) ConfigSchema() (*jsonschema.Schema, error) {
	return configSchema(c.current())
}

func (c *configurable[C]) current() C {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.defaults
}

func (c *configurable[C]) resolve(params types.ParameterSet) (C, error) {
	return decodeConfig(c.name, params, c.current())
}

// decodeConfig applies params on top of defaults and validates the result.
// Numbers may arrive as any numeric type or as numeric strings; floats are truncated
// into integer fields and unknown keys are ignored.
func decodeConfig[C any](name types.IndicatorType, params types.ParameterSet, defaults C) (C, error) {
	cfg := defaults

	if len(params) > 0 {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "mapstructure",
		})
		if err != nil {
			return defaults, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to create parameter decoder", err)
		}

		if err := decoder.Decode(map[string]any(params)); err != nil {
			return defaults, errors.Wrapf(errors.ErrCodeInvalidType, err, "invalid parameters for %s", name)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return defaults, errors.Wrapf(errors.ErrCodeInvalidParameter, err, "invalid parameters for %s", name)
	}

	return cfg, nil
}

// configSchema reflects cfg into a JSON schema and fills each property's default from cfg.
func configSchema(cfg any) (*jsonschema.Schema, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	r.RequiredFromJSONSchemaTags = true

	schema := r.Reflect(cfg)

	defaults := make(map[string]any)
	if err := mapstructure.Decode(cfg, &defaults); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIndicatorSchema, "failed to read parameter defaults", err)
	}

	if schema.Properties == nil {
		return schema, nil
	}

	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if v, ok := defaults[pair.Key]; ok {
			pair.Value.Default = v
		}
	}

	return schema, nil
}
