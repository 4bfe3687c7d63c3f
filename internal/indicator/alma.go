package indicator

import (
	"fmt"
	"strconv"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// ALMAConfig configures the Arnaud Legoux Moving Average.
type ALMAConfig struct {
	Period int          `mapstructure:"period" json:"period" jsonschema:"title=Period,minimum=1" validate:"gt=0"`
	Offset float64      `mapstructure:"offset" json:"offset" jsonschema:"title=Offset,description=Position of the Gaussian centre inside the window (0 oldest - 1 newest),minimum=0,maximum=1" validate:"gte=0,lte=1"`
	Sigma  float64      `mapstructure:"sigma" json:"sigma" jsonschema:"title=Sigma,description=Sharpness of the Gaussian filter,exclusiveMinimum=0" validate:"gt=0"`
	Source types.Source `mapstructure:"source" json:"source" jsonschema:"title=Source,enum=close,enum=open,enum=high,enum=low,enum=hl2,enum=hlc3,enum=ohlc4" validate:"oneof=close open high low hl2 hlc3 ohlc4"`
}

func (c ALMAConfig) labelArgs() string {
	return fmt.Sprintf("%d, %s, %s", c.Period,
		strconv.FormatFloat(c.Offset, 'f', -1, 64),
		strconv.FormatFloat(c.Sigma, 'f', -1, 64))
}

// ALMA is a Gaussian-weighted moving average.
type ALMA struct {
	configurable[ALMAConfig]
}

// NewALMA creates an ALMA indicator with period 9, offset 0.85 and sigma 6.
func NewALMA() Indicator {
	return &ALMA{
		configurable: configurable[ALMAConfig]{
			name:         types.IndicatorTypeALMA,
			abbreviation: "ALMA",
			defaults: ALMAConfig{
				Period: 9,
				Offset: 0.85,
				Sigma:  6,
				Source: types.SourceClose,
			},
		},
	}
}

// Calculate computes ALMA for every candle with a full window.
func (a *ALMA) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := a.resolve(params)
	if err != nil {
		return nil, err
	}

	if len(candles) < cfg.Period {
		return nil, insufficientData(a.name, cfg.Period, len(candles))
	}

	values := series.ALMA(types.Prices(candles, cfg.Source), cfg.Period, cfg.Offset, cfg.Sigma)

	return singleResults(candles, values), nil
}
