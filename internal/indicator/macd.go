package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// MACDConfig configures the Moving Average Convergence Divergence indicator.
type MACDConfig struct {
	FastPeriod   int          `mapstructure:"fastPeriod" json:"fastPeriod" jsonschema:"title=Fast Period,description=Period of the fast EMA,minimum=1" validate:"gt=0"`
	SlowPeriod   int          `mapstructure:"slowPeriod" json:"slowPeriod" jsonschema:"title=Slow Period,description=Period of the slow EMA,minimum=1" validate:"gt=0"`
	SignalPeriod int          `mapstructure:"signalPeriod" json:"signalPeriod" jsonschema:"title=Signal Period,description=Period of the EMA over the MACD line,minimum=1" validate:"gt=0"`
	Source       types.Source `mapstructure:"source" json:"source" jsonschema:"title=Source,enum=close,enum=open,enum=high,enum=low,enum=hl2,enum=hlc3,enum=ohlc4" validate:"oneof=close open high low hl2 hlc3 ohlc4"`
}

func (c MACDConfig) labelArgs() string {
	return fmt.Sprintf("%d, %d, %d", c.FastPeriod, c.SlowPeriod, c.SignalPeriod)
}

// MACD produces {macd, signal, histogram} from two EMAs of the source price.
type MACD struct {
	configurable[MACDConfig]
}

// NewMACD creates a new MACD indicator with default configuration (12, 26, 9).
func NewMACD() Indicator {
	return &MACD{
		configurable: configurable[MACDConfig]{
			name:         types.IndicatorTypeMACD,
			abbreviation: "MACD",
			defaults: MACDConfig{
				FastPeriod:   12,
				SlowPeriod:   26,
				SignalPeriod: 9,
				Source:       types.SourceClose,
			},
		},
	}
}

// Calculate computes MACD for every candle where the signal line is defined.
func (m *MACD) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := m.resolve(params)
	if err != nil {
		return nil, err
	}

	required := max(cfg.FastPeriod, cfg.SlowPeriod) + cfg.SignalPeriod - 1
	if len(candles) < required {
		return nil, insufficientData(m.name, required, len(candles))
	}

	line, signal := calculateMACD(types.Prices(candles, cfg.Source), cfg.FastPeriod, cfg.SlowPeriod, cfg.SignalPeriod)
	offset := series.Offset(len(candles), len(signal))

	results := make([]types.IndicatorResult, len(signal))
	for j := range signal {
		results[j] = types.NewMultiResult(candles[offset+j].Timestamp, map[string]float64{
			"macd":      line[j],
			"signal":    signal[j],
			"histogram": line[j] - signal[j],
		})
	}

	return results, nil
}

// calculateMACD returns the MACD line and its signal line, both trimmed to the span
// where the signal is defined.
func calculateMACD(values []float64, fastPeriod, slowPeriod, signalPeriod int) ([]float64, []float64) {
	fast, slow := series.AlignTail(series.EMA(values, fastPeriod), series.EMA(values, slowPeriod))

	line := make([]float64, len(slow))
	for i := range slow {
		line[i] = fast[i] - slow[i]
	}

	signal := series.EMA(line, signalPeriod)
	line, signal = series.AlignTail(line, signal)

	return line, signal
}
