package indicator

import (
	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// NewEMA creates an Exponential Moving Average with a default period of 20.
// The first value is the SMA of the first window.
func NewEMA() Indicator {
	return newMovingAverage(types.IndicatorTypeEMA, "EMA", 20, windowWarmup, series.EMA)
}

// NewDEMA creates a Double Exponential Moving Average (2*EMA - EMA(EMA)) with a default period of 20.
func NewDEMA() Indicator {
	return newMovingAverage(types.IndicatorTypeDEMA, "DEMA", 20, func(period int) int {
		return 2*period - 1
	}, series.DEMA)
}

// NewTEMA creates a Triple Exponential Moving Average with a default period of 20.
func NewTEMA() Indicator {
	return newMovingAverage(types.IndicatorTypeTEMA, "TEMA", 20, func(period int) int {
		return 3*period - 2
	}, series.TEMA)
}
