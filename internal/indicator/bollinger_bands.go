package indicator

import (
	"fmt"
	"strconv"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// BollingerBandsConfig configures Bollinger Bands.
type BollingerBandsConfig struct {
	Period int          `mapstructure:"period" json:"period" jsonschema:"title=Period,description=Number of periods for the moving average,minimum=1" validate:"gt=0"`
	StdDev float64      `mapstructure:"stdDev" json:"stdDev" jsonschema:"title=Standard Deviations,description=Band width in population standard deviations,exclusiveMinimum=0" validate:"gt=0"`
	Source types.Source `mapstructure:"source" json:"source" jsonschema:"title=Source,enum=close,enum=open,enum=high,enum=low,enum=hl2,enum=hlc3,enum=ohlc4" validate:"oneof=close open high low hl2 hlc3 ohlc4"`
}

func (c BollingerBandsConfig) labelArgs() string {
	return fmt.Sprintf("%d, %s", c.Period, strconv.FormatFloat(c.StdDev, 'f', -1, 64))
}

// BollingerBands produces {upper, middle, lower} around an SMA.
type BollingerBands struct {
	configurable[BollingerBandsConfig]
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() Indicator {
	return &BollingerBands{
		configurable: configurable[BollingerBandsConfig]{
			name:         types.IndicatorTypeBollingerBands,
			abbreviation: "BB",
			defaults: BollingerBandsConfig{
				Period: 20,  // Default period
				StdDev: 2.0, // Default standard deviation
				Source: types.SourceClose,
			},
		},
	}
}

// Calculate computes the bands for every candle with a full window.
func (bb *BollingerBands) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := bb.resolve(params)
	if err != nil {
		return nil, err
	}

	if len(candles) < cfg.Period {
		return nil, insufficientData(bb.name, cfg.Period, len(candles))
	}

	prices := types.Prices(candles, cfg.Source)
	middle := series.SMA(prices, cfg.Period)
	deviation := series.StdDev(prices, cfg.Period)

	offset := series.Offset(len(candles), len(middle))

	results := make([]types.IndicatorResult, len(middle))
	for j := range middle {
		// Both bands use the same width so they stay symmetric around the middle.
		width := cfg.StdDev * deviation[j]

		results[j] = types.NewMultiResult(candles[offset+j].Timestamp, map[string]float64{
			"upper":  middle[j] + width,
			"middle": middle[j],
			"lower":  middle[j] - width,
		})
	}

	return results, nil
}
