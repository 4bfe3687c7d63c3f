package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-indicators/internal/indicator/series"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// insufficientData reports that name needs required candles but only got actual.
func insufficientData(name types.IndicatorType, required, actual int) error {
	return errors.NewInsufficientDataErrorf(required, actual, string(name),
		"insufficient data for %s: required %d candles, got %d", name, required, actual)
}

// singleResults attaches tail-aligned values to the timestamps of their candles.
func singleResults(candles []types.Candle, values []float64) []types.IndicatorResult {
	offset := series.Offset(len(candles), len(values))

	results := make([]types.IndicatorResult, len(values))
	for j, v := range values {
		results[j] = types.NewResult(candles[offset+j].Timestamp, v)
	}

	return results
}

// checkFinite rejects results containing NaN or ±Inf.
func checkFinite(name types.IndicatorType, results []types.IndicatorResult) error {
	for _, r := range results {
		if r.IsMulti() {
			for field, v := range r.Values {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return errors.Newf(errors.ErrCodeIndicatorCalculation,
						"%s produced a non-finite %s at time %d", name, field, r.Timestamp)
				}
			}

			continue
		}

		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			return errors.Newf(errors.ErrCodeIndicatorCalculation,
				"%s produced a non-finite value at time %d", name, r.Timestamp)
		}
	}

	return nil
}
