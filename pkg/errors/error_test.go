package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidPeriod, "period must be positive")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidPeriod, err.Code)
	suite.Equal("period must be positive", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeInvalidParameter, "invalid parameter: %s", "stdDev")
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("invalid parameter: stdDev", err.Message)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIndicatorCalculation, "calculation failed", cause)
	suite.Equal(ErrCodeIndicatorCalculation, err.Code)
	suite.Equal("calculation failed", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("underlying error")
	err := Wrapf(ErrCodeIndicatorNotFound, cause, "indicator %s not found", "adx")
	suite.Equal(ErrCodeIndicatorNotFound, err.Code)
	suite.Equal("indicator adx not found", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal("[100] invalid parameter", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIndicatorNotFound, "indicator not found", cause)
	suite.Equal("[300] indicator not found: underlying error", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIndicatorCalculation, "calculation failed", cause)
	suite.Equal(cause, err.Unwrap())
	suite.Nil(New(ErrCodeInvalidParameter, "invalid parameter").Unwrap())
}

func (suite *ErrorTestSuite) TestGetCode() {
	suite.Equal(ErrCodeInvalidSource, GetCode(New(ErrCodeInvalidSource, "bad source")))

	// The outermost code wins
	cause := New(ErrCodeInvalidCandle, "bad candle")
	err := Wrap(ErrCodeInvalidSeries, "bad series", cause)
	suite.Equal(ErrCodeInvalidSeries, GetCode(err))

	// Codes are found through fmt wrapping
	suite.Equal(ErrCodeInvalidCandle, GetCode(fmt.Errorf("context: %w", cause)))

	suite.Equal(ErrCodeUnknown, GetCode(errors.New("standard error")))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeIndicatorPanic, "panic")
	suite.True(HasCode(err, ErrCodeIndicatorPanic))
	suite.False(HasCode(err, ErrCodeIndicatorCalculation))
}

func (suite *ErrorTestSuite) TestIsAndAs() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIndicatorCalculation, "calculation failed", cause)
	suite.True(Is(err, cause))

	var coded *Error
	suite.True(As(err, &coded))
	suite.Equal(ErrCodeIndicatorCalculation, coded.Code)
}

func (suite *ErrorTestSuite) TestErrorCodeValues() {
	suite.Equal(ErrorCode(1), ErrCodeUnknown)
	suite.Equal(ErrorCode(100), ErrCodeInvalidParameter)
	suite.Equal(ErrorCode(300), ErrCodeIndicatorNotFound)
}

func (suite *ErrorTestSuite) TestInsufficientDataError() {
	err := NewInsufficientDataErrorf(20, 5, "sma", "insufficient data for %s: required %d, got %d", "SMA", 20, 5)
	suite.Equal(20, err.Required)
	suite.Equal(5, err.Actual)
	suite.Equal("sma", err.Indicator)
	suite.Equal("insufficient data for SMA: required 20, got 5", err.Error())

	plain := NewInsufficientDataError(14, 10, "", "insufficient data")
	suite.Equal("insufficient data", plain.Message)
	suite.Equal("", plain.Indicator)
}

func (suite *ErrorTestSuite) TestIsInsufficientDataError() {
	suite.True(IsInsufficientDataError(NewInsufficientDataError(14, 10, "rsi", "insufficient data")))
	suite.True(IsInsufficientDataError(fmt.Errorf("wrapped: %w", NewInsufficientDataError(14, 10, "rsi", "x"))))
	suite.False(IsInsufficientDataError(errors.New("standard error")))
	suite.False(IsInsufficientDataError(New(ErrCodeInvalidParameter, "invalid parameter")))
	suite.False(IsInsufficientDataError(nil))
}

func (suite *ErrorTestSuite) TestInsufficientDataDefaults() {
	err := NewInsufficientDataError(26, 20, "macd", "")
	suite.Equal("macd needs 26 candles, got 20", err.Error())
	suite.Equal(6, err.Missing())
	suite.Equal(ErrCodeInsufficientData, err.Code())

	suite.Equal(0, NewInsufficientDataError(3, 5, "sma", "x").Missing())

	found, ok := AsInsufficientData(fmt.Errorf("wrapped: %w", err))
	suite.True(ok)
	suite.Same(err, found)

	_, ok = AsInsufficientData(New(ErrCodeInvalidPeriod, "bad period"))
	suite.False(ok)
}
