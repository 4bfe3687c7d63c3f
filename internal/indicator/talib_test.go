package indicator_test

import (
	"testing"

	"github.com/markcheno/go-talib"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/mocks"
	"github.com/stretchr/testify/suite"
)

// tailSamples is how many of the most recent samples are compared. The recursive
// indicators converge on TA-Lib's seeding long before the tail of the series.
const tailSamples = 200

// TalibTestSuite cross-checks the indicators against TA-Lib on generated candles.
type TalibTestSuite struct {
	suite.Suite
	engine  *indicator.Engine
	candles []types.Candle
	highs   []float64
	lows    []float64
	closes  []float64
}

func TestTalibSuite(t *testing.T) {
	suite.Run(t, new(TalibTestSuite))
}

func (suite *TalibTestSuite) SetupSuite() {
	suite.engine = indicator.NewEngine(indicator.WithLogger(logger.NewNopLogger()))

	config := mocks.DefaultConfig()
	config.Count = 1500
	config.Volatility = 0.01
	suite.candles = mocks.NewDataGenerator(2024).Generate(config)

	suite.highs = types.Highs(suite.candles)
	suite.lows = types.Lows(suite.candles)
	suite.closes = types.Closes(suite.candles)
}

// assertTail compares the last tailSamples values of ours (tail-aligned) with the
// full-length TA-Lib output.
func (suite *TalibTestSuite) assertTail(name string, expected []float64, ours []float64) {
	suite.Require().Len(expected, len(suite.candles), name)
	suite.Require().GreaterOrEqual(len(ours), tailSamples, name)

	for j := len(ours) - tailSamples; j < len(ours); j++ {
		i := len(suite.candles) - len(ours) + j
		suite.InDelta(expected[i], ours[j], 1e-6, "%s at %d", name, i)
	}
}

func (suite *TalibTestSuite) single(id string, params types.ParameterSet) []float64 {
	results := suite.engine.CalculateIndicator(id, suite.candles, params)

	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Value
	}

	return out
}

func (suite *TalibTestSuite) field(id string, params types.ParameterSet, name string) []float64 {
	results := suite.engine.CalculateIndicator(id, suite.candles, params)

	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Values[name]
	}

	return out
}

func (suite *TalibTestSuite) TestMovingAverages() {
	suite.assertTail("sma", talib.Sma(suite.closes, 20), suite.single("sma", nil))
	suite.assertTail("ema", talib.Ema(suite.closes, 20), suite.single("ema", nil))
	suite.assertTail("wma", talib.Wma(suite.closes, 20), suite.single("wma", nil))
	suite.assertTail("dema", talib.Dema(suite.closes, 10), suite.single("dema", types.ParameterSet{"period": 10}))
	suite.assertTail("tema", talib.Tema(suite.closes, 10), suite.single("tema", types.ParameterSet{"period": 10}))
}

func (suite *TalibTestSuite) TestBollingerBands() {
	upper, middle, lower := talib.BBands(suite.closes, 20, 2, 2, talib.SMA)

	suite.assertTail("bb.upper", upper, suite.field("bb", nil, "upper"))
	suite.assertTail("bb.middle", middle, suite.field("bb", nil, "middle"))
	suite.assertTail("bb.lower", lower, suite.field("bb", nil, "lower"))
}

func (suite *TalibTestSuite) TestRSI() {
	suite.assertTail("rsi", talib.Rsi(suite.closes, 14), suite.single("rsi", nil))
}

func (suite *TalibTestSuite) TestMACD() {
	macd, signal, hist := talib.Macd(suite.closes, 12, 26, 9)

	suite.assertTail("macd.macd", macd, suite.field("macd", nil, "macd"))
	suite.assertTail("macd.signal", signal, suite.field("macd", nil, "signal"))
	suite.assertTail("macd.histogram", hist, suite.field("macd", nil, "histogram"))
}

func (suite *TalibTestSuite) TestStochastic() {
	k, d := talib.StochF(suite.highs, suite.lows, suite.closes, 14, 3, talib.SMA)

	suite.assertTail("stoch.k", k, suite.field("stoch", nil, "k"))
	suite.assertTail("stoch.d", d, suite.field("stoch", nil, "d"))
}

func (suite *TalibTestSuite) TestWilliamsR() {
	suite.assertTail("williams_r", talib.WillR(suite.highs, suite.lows, suite.closes, 14), suite.single("williams_r", nil))
}

func (suite *TalibTestSuite) TestCCI() {
	suite.assertTail("cci", talib.Cci(suite.highs, suite.lows, suite.closes, 20), suite.single("cci", nil))
}

func (suite *TalibTestSuite) TestTrueRange() {
	// ATR(1) is the true range itself
	suite.assertTail("atr(1)", talib.TRange(suite.highs, suite.lows, suite.closes), suite.single("atr", types.ParameterSet{"period": 1}))
}
