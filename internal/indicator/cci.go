package indicator

import (
	"fmt"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

const (
	// CCIConstant scales the mean deviation so most values fall within ±100.
	CCIConstant = 0.015
	// CCIFlat is returned when the mean deviation of the window is zero.
	CCIFlat = 0.0
)

// CCIConfig configures the Commodity Channel Index.
type CCIConfig struct {
	Period int `mapstructure:"period" json:"period" jsonschema:"title=Period,description=Window of the typical price average,minimum=1" validate:"gt=0"`
}

func (c CCIConfig) labelArgs() string {
	return fmt.Sprintf("%d", c.Period)
}

// CCI measures how far the typical price sits from its moving average.
type CCI struct {
	configurable[CCIConfig]
}

// NewCCI creates a new CCI indicator with a default period of 20.
func NewCCI() Indicator {
	return &CCI{
		configurable: configurable[CCIConfig]{
			name:         types.IndicatorTypeCCI,
			abbreviation: "CCI",
			defaults:     CCIConfig{Period: 20},
		},
	}
}

// Calculate computes CCI for every candle with a full window.
func (c *CCI) Calculate(candles []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error) {
	cfg, err := c.resolve(params)
	if err != nil {
		return nil, err
	}

	if len(candles) < cfg.Period {
		return nil, insufficientData(c.name, cfg.Period, len(candles))
	}

	typical := types.Prices(candles, types.SourceHLC3)
	averages := series.SMA(typical, cfg.Period)
	deviations := series.MeanDeviation(typical, cfg.Period)
	offset := series.Offset(len(typical), len(averages))

	values := make([]float64, len(averages))
	for j := range averages {
		if deviations[j] == 0 {
			values[j] = CCIFlat
			continue
		}

		values[j] = (typical[offset+j] - averages[j]) / (CCIConstant * deviations[j])
	}

	return singleResults(candles, values), nil
}
