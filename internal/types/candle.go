package types

import (
	"fmt"
	"math"
)

// Candle is one OHLCV sample of a price series.
type Candle struct {
	// Timestamp is the epoch-like start time of the bucket.
	Timestamp int64 `yaml:"time" json:"time" csv:"time"`
	// Open is the first traded price of the bucket.
	Open float64 `yaml:"open" json:"open" csv:"open"`
	// High is the highest traded price of the bucket.
	High float64 `yaml:"high" json:"high" csv:"high"`
	// Low is the lowest traded price of the bucket.
	Low float64 `yaml:"low" json:"low" csv:"low"`
	// Close is the last traded price of the bucket.
	Close float64 `yaml:"close" json:"close" csv:"close"`
	// Volume is the traded volume of the bucket.
	Volume float64 `yaml:"volume" json:"volume" csv:"volume"`
}

// Source selects which price of a candle feeds a single-input indicator.
type Source string

const (
	SourceClose Source = "close"
	SourceOpen  Source = "open"
	SourceHigh  Source = "high"
	SourceLow   Source = "low"
	SourceHL2   Source = "hl2"
	SourceHLC3  Source = "hlc3"
	SourceOHLC4 Source = "ohlc4"
)

// Price returns the candle price selected by source. An empty source means close.
func (c Candle) Price(source Source) float64 {
	switch source {
	case SourceOpen:
		return c.Open
	case SourceHigh:
		return c.High
	case SourceLow:
		return c.Low
	case SourceHL2:
		return (c.High + c.Low) / 2
	case SourceHLC3:
		return c.TypicalPrice()
	case SourceOHLC4:
		return (c.Open + c.High + c.Low + c.Close) / 4
	default:
		return c.Close
	}
}

// TypicalPrice returns (high + low + close) / 3.
func (c Candle) TypicalPrice() float64 {
	return (c.High + c.Low + c.Close) / 3
}

// Prices extracts the selected price of every candle in order.
func Prices(series []Candle, source Source) []float64 {
	out := make([]float64, len(series))
	for i, c := range series {
		out[i] = c.Price(source)
	}

	return out
}

// Closes extracts the close prices of the series.
func Closes(series []Candle) []float64 {
	return Prices(series, SourceClose)
}

// Highs extracts the high prices of the series.
func Highs(series []Candle) []float64 {
	return Prices(series, SourceHigh)
}

// Lows extracts the low prices of the series.
func Lows(series []Candle) []float64 {
	return Prices(series, SourceLow)
}

// ValidateSeries checks that every price is finite and that timestamps never decrease.
// The OHLC ordering invariant is deliberately not checked.
func ValidateSeries(series []Candle) error {
	for i, c := range series {
		for _, v := range [...]float64{c.Open, c.High, c.Low, c.Close, c.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("candle %d (time=%d) has a non-finite value", i, c.Timestamp)
			}
		}

		if i > 0 && c.Timestamp < series[i-1].Timestamp {
			return fmt.Errorf("candle %d (time=%d) is older than candle %d (time=%d)",
				i, c.Timestamp, i-1, series[i-1].Timestamp)
		}
	}

	return nil
}
