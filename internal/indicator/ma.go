package indicator

import (
	"fmt"
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// MovingAverageConfig configures the single-period moving averages (SMA, EMA, WMA, HMA, DEMA, TEMA).
type MovingAverageConfig struct {
	Period int          `mapstructure:"period" json:"period" jsonschema:"title=Period,description=Number of candles in the averaging window,minimum=1" validate:"gt=0"`
	Source types.Source `mapstructure:"source" json:"source" jsonschema:"title=Source,description=Candle price to average,enum=close,enum=open,enum=high,enum=low,enum=hl2,enum=hlc3,enum=ohlc4" validate:"oneof=close open high low hl2 hlc3 ohlc4"`
}

func (c MovingAverageConfig) labelArgs() string {
	if c.Source == types.SourceClose {
		return fmt.Sprintf("%d", c.Period)
	}

	return fmt.Sprintf("%d, %s", c.Period, c.Source)
}

// MovingAverage is a single-period moving average over one candle price.
type MovingAverage struct {
	configurable[MovingAverageConfig]

	// warmup is the number of candles needed before the first value.
	warmup  func(period int) int
	compute func(values []float64, period int) []float64
}

func newMovingAverage(
	name types.IndicatorType,
	abbreviation string,
	period int,
	warmup func(period int) int,
	compute func(values []float64, period int) []float64,
) Indicator {
	return &MovingAverage{
		configurable: configurable[MovingAverageConfig]{
			name:         name,
			abbreviation: abbreviation,
			defaults: MovingAverageConfig{
				Period: period,
				Source: types.SourceClose,
			},
		},
		warmup:  warmup,
		compute: compute,
	}
}

// NewSMA creates a Simple Moving Average with a default period of 20.
func NewSMA() Indicator {
	return newMovingAverage(types.IndicatorTypeSMA, "SMA", 20, windowWarmup, series.SMA)
}

// NewWMA creates a linearly Weighted Moving Average with a default period of 20.
func NewWMA() Indicator {
	return newMovingAverage(types.IndicatorTypeWMA, "WMA", 20, windowWarmup, series.WMA)
}

// NewHMA creates a Hull Moving Average with a default period of 9.
func NewHMA() Indicator {
	return newMovingAverage(types.IndicatorTypeHMA, "HMA", 9, hmaWarmup, series.HMA)
}

// Calculate computes the moving average for every candle with a full window.
func (m *MovingAverage) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := m.resolve(params)
	if err != nil {
		return nil, err
	}

	if required := m.warmup(cfg.Period); len(candles) < required {
		return nil, insufficientData(m.name, required, len(candles))
	}

	values := m.compute(types.Prices(candles, cfg.Source), cfg.Period)

	return singleResults(candles, values), nil
}

func windowWarmup(period int) int {
	return period
}

func hmaWarmup(period int) int {
	root := max(int(math.Sqrt(float64(period))), 1)

	return period + root - 1
}
