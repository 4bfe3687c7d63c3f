package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MovingAverageTestSuite struct {
	suite.Suite
}

func TestMovingAverageSuite(t *testing.T) {
	suite.Run(t, new(MovingAverageTestSuite))
}

func (suite *MovingAverageTestSuite) TestDefaults() {
	tests := []struct {
		indicator Indicator
		name      types.IndicatorType
		period    int
		label     string
	}{
		{NewSMA(), types.IndicatorTypeSMA, 20, "SMA(20)"},
		{NewWMA(), types.IndicatorTypeWMA, 20, "WMA(20)"},
		{NewHMA(), types.IndicatorTypeHMA, 9, "HMA(9)"},
		{NewEMA(), types.IndicatorTypeEMA, 20, "EMA(20)"},
		{NewDEMA(), types.IndicatorTypeDEMA, 20, "DEMA(20)"},
		{NewTEMA(), types.IndicatorTypeTEMA, 20, "TEMA(20)"},
	}

	for _, tc := range tests {
		suite.Equal(tc.name, tc.indicator.Name())

		ma := tc.indicator.(*MovingAverage)
		suite.Equal(tc.period, ma.current().Period)
		suite.Equal(types.SourceClose, ma.current().Source)

		label, err := tc.indicator.Label(nil)
		suite.NoError(err)
		suite.Equal(tc.label, label)
	}
}

func (suite *MovingAverageTestSuite) TestSMAKnownValues() {
	results, err := NewSMA().Calculate(candlesFromCloses(1, 2, 3, 4, 5), types.ParameterSet{"period": 3})
	suite.Require().NoError(err)

	suite.Equal([]float64{2, 3, 4}, values(results))
	suite.Equal([]int64{102, 103, 104}, timestamps(results))

	for _, r := range results {
		suite.False(r.IsMulti())
	}
}

func (suite *MovingAverageTestSuite) TestSMAPeriodOne() {
	results, err := NewSMA().Calculate(candlesFromCloses(4, 5, 6), types.ParameterSet{"period": 1})
	suite.Require().NoError(err)
	suite.Equal([]float64{4, 5, 6}, values(results))
}

func (suite *MovingAverageTestSuite) TestSMAInsufficientData() {
	results, err := NewSMA().Calculate(candlesFromCloses(1, 2), types.ParameterSet{"period": 3})
	suite.Error(err)
	suite.Nil(results)
	suite.True(errors.IsInsufficientDataError(err))

	var insufficient *errors.InsufficientDataError
	suite.Require().True(errors.As(err, &insufficient))
	suite.Equal(3, insufficient.Required)
	suite.Equal(2, insufficient.Actual)
	suite.Equal("sma", insufficient.Indicator)
}

func (suite *MovingAverageTestSuite) TestWMAKnownValues() {
	results, err := NewWMA().Calculate(candlesFromCloses(1, 2, 3, 4, 5), types.ParameterSet{"period": 3})
	suite.Require().NoError(err)
	suite.Require().Len(results, 3)
	suite.InDelta(14.0/6, results[0].Value, 1e-12)
	suite.InDelta(20.0/6, results[1].Value, 1e-12)
	suite.InDelta(26.0/6, results[2].Value, 1e-12)
}

func (suite *MovingAverageTestSuite) TestHMA() {
	candles := candlesFromCloses(linearCloses(30, 0, 1)...)

	results, err := NewHMA().Calculate(candles, nil)
	suite.Require().NoError(err)
	suite.Require().Len(results, 20)

	for j, r := range results {
		suite.InDelta(float64(j+10), r.Value, 1e-9)
		suite.Equal(candles[j+10].Timestamp, r.Timestamp)
	}

	_, err = NewHMA().Calculate(candles[:10], nil)
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *MovingAverageTestSuite) TestLooseParameters() {
	candles := candlesFromCloses(1, 2, 3, 4, 5)
	expected := []float64{2, 3, 4}

	for _, params := range []types.ParameterSet{
		{"period": 3},
		{"period": 3.0},
		{"period": 3.9},
		{"period": "3"},
		{"Period": int64(3)},
		{"period": 3, "unused": "ignored"},
	} {
		results, err := NewSMA().Calculate(candles, params)
		suite.Require().NoError(err, "%v", params)
		suite.Equal(expected, values(results), "%v", params)
	}
}

func (suite *MovingAverageTestSuite) TestInvalidParameters() {
	candles := candlesFromCloses(1, 2, 3, 4, 5)

	_, err := NewSMA().Calculate(candles, types.ParameterSet{"period": 0})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	_, err = NewSMA().Calculate(candles, types.ParameterSet{"period": -4})
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	_, err = NewSMA().Calculate(candles, types.ParameterSet{"period": "abc"})
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))

	_, err = NewSMA().Calculate(candles, types.ParameterSet{"source": "volume"})
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *MovingAverageTestSuite) TestSource() {
	candles := candlesFromHLC(
		[]float64{4, 6, 8},
		[]float64{2, 2, 2},
		[]float64{3, 3, 3},
	)

	results, err := NewSMA().Calculate(candles, types.ParameterSet{"period": 1, "source": "hl2"})
	suite.Require().NoError(err)
	suite.Equal([]float64{3, 4, 5}, values(results))

	results, err = NewSMA().Calculate(candles, types.ParameterSet{"period": 3, "source": "high"})
	suite.Require().NoError(err)
	suite.Equal([]float64{6}, values(results))

	label, err := NewSMA().Label(types.ParameterSet{"period": 50, "source": "hl2"})
	suite.NoError(err)
	suite.Equal("SMA(50, hl2)", label)
}

func (suite *MovingAverageTestSuite) TestConfigChangesDefaults() {
	sma := NewSMA()
	suite.NoError(sma.Config(types.ParameterSet{"period": 2}))

	results, err := sma.Calculate(candlesFromCloses(1, 2, 3), nil)
	suite.Require().NoError(err)
	suite.Equal([]float64{1.5, 2.5}, values(results))

	// Call parameters still win over the configured defaults
	results, err = sma.Calculate(candlesFromCloses(1, 2, 3), types.ParameterSet{"period": 3})
	suite.Require().NoError(err)
	suite.Equal([]float64{2}, values(results))

	// A rejected Config leaves the defaults untouched
	suite.Error(sma.Config(types.ParameterSet{"period": 0}))
	label, err := sma.Label(nil)
	suite.NoError(err)
	suite.Equal("SMA(2)", label)
}

func (suite *MovingAverageTestSuite) TestInputNotMutated() {
	candles := candlesFromCloses(5, 3, 8, 1, 9, 2)
	snapshot := append([]types.Candle(nil), candles...)

	for _, indicator := range []Indicator{NewSMA(), NewWMA(), NewHMA(), NewEMA(), NewDEMA(), NewTEMA()} {
		_, err := indicator.Calculate(candles, types.ParameterSet{"period": 2})
		suite.NoError(err)
	}

	suite.Equal(snapshot, candles)
}

func (suite *MovingAverageTestSuite) TestConfigSchema() {
	schema, err := NewSMA().ConfigSchema()
	suite.Require().NoError(err)
	suite.Require().NotNil(schema.Properties)

	period, ok := schema.Properties.Get("period")
	suite.Require().True(ok)
	suite.Equal("integer", period.Type)
	suite.Equal(20, period.Default)

	source, ok := schema.Properties.Get("source")
	suite.Require().True(ok)
	suite.Equal(types.SourceClose, source.Default)
	suite.Len(source.Enum, 7)
}
