package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// KAMAConfig configures Kaufman's Adaptive Moving Average.
type KAMAConfig struct {
	Period     int          `mapstructure:"period" json:"period" jsonschema:"title=Period,description=Efficiency ratio window,minimum=1" validate:"gt=0"`
	FastPeriod int          `mapstructure:"fastPeriod" json:"fastPeriod" jsonschema:"title=Fast Period,description=Period of the fastest smoothing constant,minimum=1" validate:"gt=0"`
	SlowPeriod int          `mapstructure:"slowPeriod" json:"slowPeriod" jsonschema:"title=Slow Period,description=Period of the slowest smoothing constant,minimum=1" validate:"gt=0"`
	Source     types.Source `mapstructure:"source" json:"source" jsonschema:"title=Source,enum=close,enum=open,enum=high,enum=low,enum=hl2,enum=hlc3,enum=ohlc4" validate:"oneof=close open high low hl2 hlc3 ohlc4"`
}

func (c KAMAConfig) labelArgs() string {
	return fmt.Sprintf("%d, %d, %d", c.Period, c.FastPeriod, c.SlowPeriod)
}

// KAMA adapts its smoothing to the efficiency ratio of recent price movement.
type KAMA struct {
	configurable[KAMAConfig]
}

// NewKAMA creates a KAMA indicator with the usual 10/2/30 defaults.
func NewKAMA() Indicator {
	return &KAMA{
		configurable: configurable[KAMAConfig]{
			name:         types.IndicatorTypeKAMA,
			abbreviation: "KAMA",
			defaults: KAMAConfig{
				Period:     10,
				FastPeriod: 2,
				SlowPeriod: 30,
				Source:     types.SourceClose,
			},
		},
	}
}

// Calculate computes KAMA starting at the last candle of the first window.
func (k *KAMA) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := k.resolve(params)
	if err != nil {
		return nil, err
	}

	if len(candles) < cfg.Period {
		return nil, insufficientData(k.name, cfg.Period, len(candles))
	}

	values := series.KAMA(types.Prices(candles, cfg.Source), cfg.Period, cfg.FastPeriod, cfg.SlowPeriod)

	return singleResults(candles, values), nil
}
