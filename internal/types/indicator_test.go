package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type IndicatorTestSuite struct {
	suite.Suite
}

func TestIndicatorSuite(t *testing.T) {
	suite.Run(t, new(IndicatorTestSuite))
}

func (suite *IndicatorTestSuite) TestIndicatorTypeAsString() {
	suite.Equal("sma", string(IndicatorTypeSMA))
	suite.Equal("ema", string(IndicatorTypeEMA))
	suite.Equal("rsi", string(IndicatorTypeRSI))
	suite.Equal("bb", string(IndicatorTypeBollingerBands))
	suite.Equal("macd", string(IndicatorTypeMACD))
	suite.Equal("stoch", string(IndicatorTypeStochasticOscillator))
	suite.Equal("atr", string(IndicatorTypeATR))
	suite.Equal("williams_r", string(IndicatorTypeWilliamsR))
	suite.Equal("cci", string(IndicatorTypeCCI))
}

func (suite *IndicatorTestSuite) TestAllIndicatorTypes() {
	all := AllIndicatorTypes()
	suite.Len(all, 15)

	seen := make(map[IndicatorType]bool)
	for _, t := range all {
		suite.True(t.IsValid())
		suite.False(seen[t], "duplicate indicator type %s", t)
		seen[t] = true
	}

	// Callers cannot mutate the internal list
	all[0] = "changed"
	suite.Equal(IndicatorTypeSMA, AllIndicatorTypes()[0])
}

func (suite *IndicatorTestSuite) TestParseIndicatorType() {
	tests := []struct {
		input    string
		expected IndicatorType
	}{
		{"sma", IndicatorTypeSMA},
		{"SMA", IndicatorTypeSMA},
		{"  ema ", IndicatorTypeEMA},
		{"ma", IndicatorTypeSMA},
		{"bollinger_bands", IndicatorTypeBollingerBands},
		{"Bollinger-Bands", IndicatorTypeBollingerBands},
		{"stochastic_oscillator", IndicatorTypeStochasticOscillator},
		{"willr", IndicatorTypeWilliamsR},
		{"williams_r", IndicatorTypeWilliamsR},
		{"cci", IndicatorTypeCCI},
	}

	for _, tc := range tests {
		got, err := ParseIndicatorType(tc.input)
		suite.NoError(err, tc.input)
		suite.Equal(tc.expected, got, tc.input)
	}
}

func (suite *IndicatorTestSuite) TestParseIndicatorTypeUnknown() {
	_, err := ParseIndicatorType("nonexistent_id")
	suite.Error(err)
	suite.Contains(err.Error(), "unknown indicator type")

	_, err = ParseIndicatorType("")
	suite.Error(err)
}

func (suite *IndicatorTestSuite) TestIsValid() {
	suite.True(IndicatorTypeKAMA.IsValid())
	suite.False(IndicatorType("adx").IsValid())
}
