package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

const (
	// RSISaturated is returned when the average loss is zero but prices moved up.
	RSISaturated = 100.0
	// RSINeutral is returned when both averages are zero (no movement at all).
	RSINeutral = 50.0
)

// RSIConfig configures the Relative Strength Index.
type RSIConfig struct {
	Period int          `mapstructure:"period" json:"period" jsonschema:"title=Period,description=Wilder smoothing period,minimum=1" validate:"gt=0"`
	Source types.Source `mapstructure:"source" json:"source" jsonschema:"title=Source,enum=close,enum=open,enum=high,enum=low,enum=hl2,enum=hlc3,enum=ohlc4" validate:"oneof=close open high low hl2 hlc3 ohlc4"`
}

func (c RSIConfig) labelArgs() string {
	return fmt.Sprintf("%d", c.Period)
}

// RSI represents the Relative Strength Index indicator.
type RSI struct {
	configurable[RSIConfig]
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() Indicator {
	return &RSI{
		configurable: configurable[RSIConfig]{
			name:         types.IndicatorTypeRSI,
			abbreviation: "RSI",
			defaults: RSIConfig{
				Period: 14, // Default period
				Source: types.SourceClose,
			},
		},
	}
}

// Calculate computes RSI for every candle after the first period price changes.
// The series needs period+1 candles.
func (r *RSI) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := r.resolve(params)
	if err != nil {
		return nil, err
	}

	if len(candles) < cfg.Period+1 {
		return nil, insufficientData(r.name, cfg.Period+1, len(candles))
	}

	values := calculateRSI(types.Prices(candles, cfg.Source), cfg.Period)

	return singleResults(candles, values), nil
}

// calculateRSI seeds the average gain/loss with the plain mean of the first period
// changes and continues with Wilder's smoothing: avg = (avg*(period-1) + new) / period.
func calculateRSI(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period+1 {
		return nil
	}

	// Calculate price changes
	gains := make([]float64, 0, len(values)-1)
	losses := make([]float64, 0, len(values)-1)

	for i := 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}

	avgGain := 0.0
	avgLoss := 0.0

	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)

	out := make([]float64, 0, len(values)-period)
	out = append(out, rsiFromAverages(avgGain, avgLoss))

	for i := period; i < len(gains); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
		out = append(out, rsiFromAverages(avgGain, avgLoss))
	}

	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return RSINeutral
		}

		return RSISaturated // Perfect uptrend
	}

	rs := avgGain / avgLoss

	return 100 - (100 / (1 + rs))
}
