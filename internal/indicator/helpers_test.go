package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// candlesFromCloses builds well-formed candles whose open is the previous close.
func candlesFromCloses(closes ...float64) []types.Candle {
	candles := make([]types.Candle, len(closes))
	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}

		candles[i] = types.Candle{
			Timestamp: int64(100 + i),
			Open:      open,
			High:      math.Max(open, c),
			Low:       math.Min(open, c),
			Close:     c,
		}
	}

	return candles
}

// candlesFromHLC builds candles from parallel high, low and close slices.
func candlesFromHLC(highs, lows, closes []float64) []types.Candle {
	candles := make([]types.Candle, len(closes))
	for i := range closes {
		candles[i] = types.Candle{
			Timestamp: int64(100 + i),
			Open:      closes[i],
			High:      highs[i],
			Low:       lows[i],
			Close:     closes[i],
		}
	}

	return candles
}

func flatCandles(count int, price float64) []types.Candle {
	closes := make([]float64, count)
	for i := range closes {
		closes[i] = price
	}

	return candlesFromCloses(closes...)
}

func linearCloses(count int, start, step float64) []float64 {
	closes := make([]float64, count)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}

	return closes
}

func values(results []types.IndicatorResult) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Value
	}

	return out
}

func timestamps(results []types.IndicatorResult) []int64 {
	out := make([]int64, len(results))
	for i, r := range results {
		out[i] = r.Timestamp
	}

	return out
}
