package indicator

import (
	"sync"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"go.uber.org/zap"
)

// Engine dispatches indicator calculations by identifier.
type Engine struct {
	registry IndicatorRegistry
	log      *logger.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRegistry replaces the default registry.
func WithRegistry(registry IndicatorRegistry) EngineOption {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithLogger replaces the default logger.
func WithLogger(log *logger.Logger) EngineOption {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates an engine over every catalog indicator with its default parameters.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{}

	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		// The default registry has no overrides, so it cannot fail.
		registry, _ := NewDefaultRegistry(nil)
		e.registry = registry
	}

	if e.log == nil {
		e.log = logger.Default()
	}

	return e
}

// NewEngineFromConfig creates an engine whose logger level and indicator defaults come
// from cfg. opts are applied last and may replace the configured logger.
func NewEngineFromConfig(cfg *config.EngineConfig, opts ...EngineOption) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	overrides, err := cfg.IndicatorDefaults()
	if err != nil {
		return nil, err
	}

	registry, err := NewDefaultRegistry(overrides)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLoggerWithLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to create logger", err)
	}

	return NewEngine(append([]EngineOption{WithRegistry(registry), WithLogger(log)}, opts...)...), nil
}

// Registry returns the registry used by the engine.
func (e *Engine) Registry() IndicatorRegistry {
	return e.registry
}

// Calculate runs the indicator identified by id and reports every failure as an error.
// A panic inside the indicator is recovered and returned as ErrCodeIndicatorPanic.
func (e *Engine) Calculate(id string, candles []types.Candle, params types.ParameterSet) (results []types.IndicatorResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = errors.Newf(errors.ErrCodeIndicatorPanic, "indicator %s panicked: %v", id, r)
		}
	}()

	name, indicator, err := e.lookup(id)
	if err != nil {
		return nil, err
	}

	if err := types.ValidateSeries(candles); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSeries, "invalid candle series", err)
	}

	results, err = indicator.Calculate(candles, params)
	if err != nil {
		return nil, err
	}

	if err := checkFinite(name, results); err != nil {
		return nil, err
	}

	return results, nil
}

// CalculateIndicator runs the indicator identified by id and never fails: unknown ids,
// invalid parameters, short series, calculation errors and panics all produce an empty,
// non-nil slice and a log entry.
func (e *Engine) CalculateIndicator(id string, candles []types.Candle, params types.ParameterSet) []types.IndicatorResult {
	results, err := e.Calculate(id, candles, params)
	if err == nil {
		if results == nil {
			return []types.IndicatorResult{}
		}

		return results
	}

	fields := []zap.Field{
		zap.String("indicator", id),
		zap.Int("candles", len(candles)),
		zap.Error(err),
	}

	if insufficient, ok := errors.AsInsufficientData(err); ok {
		e.log.Debug("Not enough candles for indicator", append(fields, zap.Int("required", insufficient.Required))...)

		return []types.IndicatorResult{}
	}

	switch {
	case errors.HasCode(err, errors.ErrCodeIndicatorPanic), errors.HasCode(err, errors.ErrCodeIndicatorCalculation):
		e.log.Error("Indicator calculation failed", fields...)
	default:
		e.log.Warn("Indicator calculation skipped", fields...)
	}

	return []types.IndicatorResult{}
}

// Latest returns the most recent result of the indicator, or None when it produced nothing.
func (e *Engine) Latest(id string, candles []types.Candle, params types.ParameterSet) optional.Option[types.IndicatorResult] {
	results := e.CalculateIndicator(id, candles, params)
	if len(results) == 0 {
		return optional.None[types.IndicatorResult]()
	}

	return optional.Some(results[len(results)-1])
}

// Label returns the legend label of the indicator for params, e.g. "BB(20, 2)".
func (e *Engine) Label(id string, params types.ParameterSet) (string, error) {
	_, indicator, err := e.lookup(id)
	if err != nil {
		return "", err
	}

	return indicator.Label(params)
}

// lookup resolves id through the catalog aliases first and falls back to the raw id, so
// indicators registered under custom names stay reachable.
func (e *Engine) lookup(id string) (types.IndicatorType, Indicator, error) {
	name, err := types.ParseIndicatorType(id)
	if err != nil {
		name = types.IndicatorType(id)
	}

	indicator, err := e.registry.GetIndicator(name)
	if err != nil {
		return name, nil, err
	}

	return name, indicator, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return NewEngine()
})

// CalculateIndicator runs the indicator identified by id on a shared engine holding the
// default catalog. See Engine.CalculateIndicator.
func CalculateIndicator(id string, candles []types.Candle, params types.ParameterSet) []types.IndicatorResult {
	return defaultEngine().CalculateIndicator(id, candles, params)
}
