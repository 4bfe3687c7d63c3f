// Package series contains the numeric building blocks shared by the indicators.
//
// Every routine takes an arbitrary []float64 and returns the values it can compute as a
// tail-aligned slice: out[j] belongs to input index len(in)-len(out)+j. A window that
// cannot be filled produces no output, so a result is always a contiguous suffix of its
// input. Routines never modify their input.
package series

import "math"

// Offset returns the input index of out[0] for a tail-aligned output.
func Offset(inputLen, outputLen int) int {
	return inputLen - outputLen
}

// AlignTail trims the front of the longer slice so that both slices end on the same
// input index and have equal length.
func AlignTail(a, b []float64) ([]float64, []float64) {
	switch {
	case len(a) > len(b):
		return a[len(a)-len(b):], b
	case len(b) > len(a):
		return a, b[len(b)-len(a):]
	default:
		return a, b
	}
}

// SMA returns the simple moving average over each full window of period values.
func SMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	out := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		out = append(out, mean(values[i-period+1:i+1]))
	}

	return out
}

// EMA returns the exponential moving average with multiplier 2/(period+1).
// The first value is the SMA of the first period values and sits at input index period-1.
func EMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	k := 2.0 / float64(period+1)

	out := make([]float64, 0, len(values)-period+1)

	ema := mean(values[:period])
	out = append(out, ema)

	for i := period; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
		out = append(out, ema)
	}

	return out
}

// WMA returns the linearly weighted moving average; the newest value weighs period,
// the oldest weighs 1.
func WMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	denominator := float64(period*(period+1)) / 2

	out := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]

		sum := 0.0
		for j, v := range window {
			sum += float64(j+1) * v
		}

		out = append(out, sum/denominator)
	}

	return out
}

// HMA returns the Hull moving average: WMA(2*WMA(n/2) - WMA(n), sqrt(n)).
// The half and square-root periods are floored and never drop below 1.
func HMA(values []float64, period int) []float64 {
	if period <= 0 {
		return nil
	}

	half := max(period/2, 1)
	root := max(int(math.Sqrt(float64(period))), 1)

	full := WMA(values, period)
	if len(full) == 0 {
		return nil
	}

	halfWMA, full := AlignTail(WMA(values, half), full)

	raw := make([]float64, len(full))
	for i := range full {
		raw[i] = 2*halfWMA[i] - full[i]
	}

	return WMA(raw, root)
}

// DEMA returns the double exponential moving average 2*EMA - EMA(EMA).
func DEMA(values []float64, period int) []float64 {
	e1 := EMA(values, period)
	e2 := EMA(e1, period)

	if len(e2) == 0 {
		return nil
	}

	e1, e2 = AlignTail(e1, e2)

	out := make([]float64, len(e2))
	for i := range e2 {
		out[i] = 2*e1[i] - e2[i]
	}

	return out
}

// TEMA returns the triple exponential moving average 3*EMA1 - 3*EMA2 + EMA3.
func TEMA(values []float64, period int) []float64 {
	e1 := EMA(values, period)
	e2 := EMA(e1, period)
	e3 := EMA(e2, period)

	if len(e3) == 0 {
		return nil
	}

	e1 = e1[len(e1)-len(e3):]
	e2 = e2[len(e2)-len(e3):]

	out := make([]float64, len(e3))
	for i := range e3 {
		out[i] = 3*e1[i] - 3*e2[i] + e3[i]
	}

	return out
}

// KAMA returns Kaufman's adaptive moving average. The first value is the input at
// index period-1; afterwards the smoothing constant follows the efficiency ratio of the
// last period steps. A window with no movement at all has an efficiency ratio of 0.
func KAMA(values []float64, period, fastPeriod, slowPeriod int) []float64 {
	if period <= 0 || fastPeriod <= 0 || slowPeriod <= 0 || len(values) < period {
		return nil
	}

	fastSC := 2.0 / float64(fastPeriod+1)
	slowSC := 2.0 / float64(slowPeriod+1)

	out := make([]float64, 0, len(values)-period+1)

	kama := values[period-1]
	out = append(out, kama)

	for i := period; i < len(values); i++ {
		change := math.Abs(values[i] - values[i-period])

		volatility := 0.0
		for j := i - period + 1; j <= i; j++ {
			volatility += math.Abs(values[j] - values[j-1])
		}

		er := 0.0
		if volatility != 0 {
			er = change / volatility
		}

		sc := math.Pow(er*(fastSC-slowSC)+slowSC, 2)
		kama += sc * (values[i] - kama)
		out = append(out, kama)
	}

	return out
}

// ALMA returns the Arnaud Legoux moving average. offset in [0, 1] moves the Gaussian
// centre from the oldest (0) to the newest (1) value of the window; sigma controls its
// width as period/sigma.
func ALMA(values []float64, period int, offset, sigma float64) []float64 {
	if period <= 0 || sigma <= 0 || len(values) < period {
		return nil
	}

	m := offset * float64(period-1)
	s := float64(period) / sigma

	weights := make([]float64, period)
	norm := 0.0

	for k := range weights {
		d := float64(k) - m
		weights[k] = math.Exp(-(d * d) / (2 * s * s))
		norm += weights[k]
	}

	out := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]

		sum := 0.0
		for k, v := range window {
			sum += weights[k] * v
		}

		out = append(out, sum/norm)
	}

	return out
}

// StdDev returns the population standard deviation (divided by period) of each window.
func StdDev(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	out := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		m := mean(window)

		squared := 0.0
		for _, v := range window {
			d := v - m
			squared += d * d
		}

		out = append(out, math.Sqrt(squared/float64(period)))
	}

	return out
}

// MeanDeviation returns the mean absolute deviation of each window around its mean.
func MeanDeviation(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	out := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		m := mean(window)

		sum := 0.0
		for _, v := range window {
			sum += math.Abs(v - m)
		}

		out = append(out, sum/float64(period))
	}

	return out
}

// Highest returns the maximum of each window.
func Highest(values []float64, period int) []float64 {
	return extreme(values, period, func(a, b float64) bool { return a > b })
}

// Lowest returns the minimum of each window.
func Lowest(values []float64, period int) []float64 {
	return extreme(values, period, func(a, b float64) bool { return a < b })
}

func extreme(values []float64, period int, better func(a, b float64) bool) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	out := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		best := values[i-period+1]
		for _, v := range values[i-period+2 : i+1] {
			if better(v, best) {
				best = v
			}
		}

		out = append(out, best)
	}

	return out
}

func mean(window []float64) float64 {
	sum := 0.0
	for _, v := range window {
		sum += v
	}

	return sum / float64(len(window))
}
