package indicator

import (
	"fmt"
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// ATRConfig configures the Average True Range.
type ATRConfig struct {
	Period int `mapstructure:"period" json:"period" jsonschema:"title=Period,description=Number of true ranges to average,minimum=1" validate:"gt=0"`
}

func (c ATRConfig) labelArgs() string {
	return fmt.Sprintf("%d", c.Period)
}

// ATR represents the Average True Range indicator.
type ATR struct {
	configurable[ATRConfig]
}

// NewATR creates a new ATR indicator with a default period of 14.
func NewATR() Indicator {
	return &ATR{
		configurable: configurable[ATRConfig]{
			name:         types.IndicatorTypeATR,
			abbreviation: "ATR",
			defaults:     ATRConfig{Period: 14},
		},
	}
}

// Calculate computes the simple average of the true range for every candle with a full window.
func (a *ATR) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := a.resolve(params)
	if err != nil {
		return nil, err
	}

	if len(candles) < cfg.Period {
		return nil, insufficientData(a.name, cfg.Period, len(candles))
	}

	values := series.SMA(trueRanges(candles), cfg.Period)

	return singleResults(candles, values), nil
}

// trueRanges returns one true range per candle. The first candle has no previous close,
// so its true range is its own high-low span.
func trueRanges(candles []types.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		if i == 0 {
			out[i] = c.High - c.Low
			continue
		}

		prevClose := candles[i-1].Close
		out[i] = math.Max(c.High-c.Low, math.Max(math.Abs(c.High-prevClose), math.Abs(c.Low-prevClose)))
	}

	return out
}
