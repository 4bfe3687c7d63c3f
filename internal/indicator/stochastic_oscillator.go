package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// StochasticFlatK is %K for a window whose highest high equals its lowest low.
const StochasticFlatK = 50.0

// StochasticConfig configures the Stochastic Oscillator.
type StochasticConfig struct {
	KPeriod int `mapstructure:"kPeriod" json:"kPeriod" jsonschema:"title=%K Period,description=Lookback window of the high/low range,minimum=1" validate:"gt=0"`
	DPeriod int `mapstructure:"dPeriod" json:"dPeriod" jsonschema:"title=%D Period,description=SMA period applied to %K,minimum=1" validate:"gt=0"`
}

func (c StochasticConfig) labelArgs() string {
	return fmt.Sprintf("%d, %d", c.KPeriod, c.DPeriod)
}

// StochasticOscillator produces {k, d}.
type StochasticOscillator struct {
	configurable[StochasticConfig]
}

// NewStochasticOscillator creates a new Stochastic Oscillator with default configuration (14, 3).
func NewStochasticOscillator() Indicator {
	return &StochasticOscillator{
		configurable: configurable[StochasticConfig]{
			name:         types.IndicatorTypeStochasticOscillator,
			abbreviation: "Stoch",
			defaults: StochasticConfig{
				KPeriod: 14,
				DPeriod: 3,
			},
		},
	}
}

// Calculate computes %K and %D for every candle where %D is defined.
func (s *StochasticOscillator) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := s.resolve(params)
	if err != nil {
		return nil, err
	}

	required := cfg.KPeriod + cfg.DPeriod - 1
	if len(candles) < required {
		return nil, insufficientData(s.name, required, len(candles))
	}

	k := percentK(candles, cfg.KPeriod)
	d := series.SMA(k, cfg.DPeriod)
	k, d = series.AlignTail(k, d)

	offset := series.Offset(len(candles), len(d))

	results := make([]types.IndicatorResult, len(d))
	for j := range d {
		results[j] = types.NewMultiResult(candles[offset+j].Timestamp, map[string]float64{
			"k": k[j],
			"d": d[j],
		})
	}

	return results, nil
}

// percentK returns the raw %K for every full window of period candles.
func percentK(candles []types.Candle, period int) []float64 {
	highs := series.Highest(types.Highs(candles), period)
	lows := series.Lowest(types.Lows(candles), period)
	offset := series.Offset(len(candles), len(highs))

	out := make([]float64, len(highs))
	for j := range highs {
		rng := highs[j] - lows[j]
		if rng == 0 {
			out[j] = StochasticFlatK
			continue
		}

		out[j] = (candles[offset+j].Close - lows[j]) / rng * 100
	}

	return out
}
