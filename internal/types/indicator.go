package types

import (
	"fmt"
	"strings"
)

type IndicatorType string

const (
	IndicatorTypeSMA                  IndicatorType = "sma"
	IndicatorTypeEMA                  IndicatorType = "ema"
	IndicatorTypeWMA                  IndicatorType = "wma"
	IndicatorTypeHMA                  IndicatorType = "hma"
	IndicatorTypeDEMA                 IndicatorType = "dema"
	IndicatorTypeTEMA                 IndicatorType = "tema"
	IndicatorTypeKAMA                 IndicatorType = "kama"
	IndicatorTypeALMA                 IndicatorType = "alma"
	IndicatorTypeRSI                  IndicatorType = "rsi"
	IndicatorTypeBollingerBands       IndicatorType = "bb"
	IndicatorTypeMACD                 IndicatorType = "macd"
	IndicatorTypeStochasticOscillator IndicatorType = "stoch"
	IndicatorTypeATR                  IndicatorType = "atr"
	IndicatorTypeWilliamsR            IndicatorType = "williams_r"
	IndicatorTypeCCI                  IndicatorType = "cci"
)

// allIndicatorTypes is kept in catalog order.
var allIndicatorTypes = []IndicatorType{
	IndicatorTypeSMA,
	IndicatorTypeEMA,
	IndicatorTypeWMA,
	IndicatorTypeHMA,
	IndicatorTypeDEMA,
	IndicatorTypeTEMA,
	IndicatorTypeKAMA,
	IndicatorTypeALMA,
	IndicatorTypeBollingerBands,
	IndicatorTypeRSI,
	IndicatorTypeMACD,
	IndicatorTypeStochasticOscillator,
	IndicatorTypeATR,
	IndicatorTypeWilliamsR,
	IndicatorTypeCCI,
}

var indicatorTypeAliases = map[string]IndicatorType{
	"ma":                    IndicatorTypeSMA,
	"bollinger":             IndicatorTypeBollingerBands,
	"bollinger_bands":       IndicatorTypeBollingerBands,
	"stochastic":            IndicatorTypeStochasticOscillator,
	"stochastic_oscillator": IndicatorTypeStochasticOscillator,
	"willr":                 IndicatorTypeWilliamsR,
	"williams":              IndicatorTypeWilliamsR,
	"williamsr":             IndicatorTypeWilliamsR,
}

// AllIndicatorTypes returns every known indicator type in catalog order.
func AllIndicatorTypes() []IndicatorType {
	out := make([]IndicatorType, len(allIndicatorTypes))
	copy(out, allIndicatorTypes)

	return out
}

// IsValid reports whether t is one of the known indicator types.
func (t IndicatorType) IsValid() bool {
	for _, known := range allIndicatorTypes {
		if t == known {
			return true
		}
	}

	return false
}

// ParseIndicatorType maps a free-form identifier (as sent by the chart settings form)
// to an IndicatorType. Matching is case-insensitive and accepts a few common aliases.
func ParseIndicatorType(id string) (IndicatorType, error) {
	normalized := strings.ToLower(strings.TrimSpace(id))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	if t := IndicatorType(normalized); t.IsValid() {
		return t, nil
	}

	if t, ok := indicatorTypeAliases[normalized]; ok {
		return t, nil
	}

	return "", fmt.Errorf("unknown indicator type %q", id)
}
