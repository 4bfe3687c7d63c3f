package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// WilliamsRFlat is %R for a window whose highest high equals its lowest low.
const WilliamsRFlat = -50.0

// WilliamsRConfig configures Williams %R.
type WilliamsRConfig struct {
	Period int `mapstructure:"period" json:"period" jsonschema:"title=Period,description=Lookback window of the high/low range,minimum=1" validate:"gt=0"`
}

func (c WilliamsRConfig) labelArgs() string {
	return fmt.Sprintf("%d", c.Period)
}

// WilliamsR ranges from -100 (close at the lowest low) to 0 (close at the highest high).
type WilliamsR struct {
	configurable[WilliamsRConfig]
}

// NewWilliamsR creates a new Williams %R indicator with a default period of 14.
func NewWilliamsR() Indicator {
	return &WilliamsR{
		configurable: configurable[WilliamsRConfig]{
			name:         types.IndicatorTypeWilliamsR,
			abbreviation: "%R",
			defaults:     WilliamsRConfig{Period: 14},
		},
	}
}

// Calculate computes %R for every candle with a full window.
func (w *WilliamsR) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := w.resolve(params)
	if err != nil {
		return nil, err
	}

	if len(candles) < cfg.Period {
		return nil, insufficientData(w.name, cfg.Period, len(candles))
	}

	highs := series.Highest(types.Highs(candles), cfg.Period)
	lows := series.Lowest(types.Lows(candles), cfg.Period)
	offset := series.Offset(len(candles), len(highs))

	values := make([]float64, len(highs))
	for j := range highs {
		rng := highs[j] - lows[j]
		if rng == 0 {
			values[j] = WilliamsRFlat
			continue
		}

		values[j] = (highs[j] - candles[offset+j].Close) / rng * -100
	}

	return singleResults(candles, values), nil
}
