package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ParamsTestSuite struct {
	suite.Suite
}

func TestParamsSuite(t *testing.T) {
	suite.Run(t, new(ParamsTestSuite))
}

func (suite *ParamsTestSuite) TestDecodeKeepsDefaults() {
	defaults := MACDConfig{FastPeriod: 12, SlowPeriod: 26, SignalPeriod: 9, Source: types.SourceClose}

	cfg, err := decodeConfig(types.IndicatorTypeMACD, types.ParameterSet{"slowPeriod": 30.0}, defaults)
	suite.Require().NoError(err)
	suite.Equal(MACDConfig{FastPeriod: 12, SlowPeriod: 30, SignalPeriod: 9, Source: types.SourceClose}, cfg)

	cfg, err = decodeConfig(types.IndicatorTypeMACD, nil, defaults)
	suite.Require().NoError(err)
	suite.Equal(defaults, cfg)
}

func (suite *ParamsTestSuite) TestDecodeErrorsReturnDefaults() {
	defaults := RSIConfig{Period: 14, Source: types.SourceClose}

	cfg, err := decodeConfig(types.IndicatorTypeRSI, types.ParameterSet{"period": map[string]any{"value": 1}}, defaults)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))
	suite.Equal(defaults, cfg)
	suite.Contains(err.Error(), "invalid parameters for rsi")

	cfg, err = decodeConfig(types.IndicatorTypeRSI, types.ParameterSet{"period": 0}, defaults)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
	suite.Equal(defaults, cfg)
}

func (suite *ParamsTestSuite) TestEveryIndicatorHasSchema() {
	for _, indicator := range DefaultIndicators() {
		schema, err := indicator.ConfigSchema()
		suite.Require().NoError(err, indicator.Name())
		suite.Require().NotNil(schema.Properties, indicator.Name())

		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			suite.NotNil(pair.Value.Default, "%s.%s", indicator.Name(), pair.Key)
		}
	}
}

func (suite *ParamsTestSuite) TestSchemaReflectsConfiguredDefaults() {
	bb := NewBollingerBands()
	suite.Require().NoError(bb.Config(types.ParameterSet{"stdDev": 3}))

	schema, err := bb.ConfigSchema()
	suite.Require().NoError(err)

	stdDev, ok := schema.Properties.Get("stdDev")
	suite.Require().True(ok)
	suite.Equal(3.0, stdDev.Default)
	suite.Equal("number", stdDev.Type)
}

func (suite *ParamsTestSuite) TestEveryIndicatorName() {
	indicators := DefaultIndicators()
	suite.Len(indicators, len(types.AllIndicatorTypes()))

	for i, name := range types.AllIndicatorTypes() {
		suite.Equal(name, indicators[i].Name())
	}
}
