package types

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ParameterSet is the loose parameter bag sent by the indicator settings form.
// Values are usually numbers; numeric strings and the price source name are accepted.
type ParameterSet map[string]any

// IndicatorResult is one output sample of an indicator.
type IndicatorResult struct {
	// Timestamp is copied from the input candle the sample belongs to.
	Timestamp int64
	// Value holds the result of single-valued indicators.
	Value float64
	// Values holds the named results of multi-valued indicators (e.g. upper/middle/lower).
	// It is nil for single-valued indicators.
	Values map[string]float64
}

// NewResult creates a single-valued result.
func NewResult(timestamp int64, value float64) IndicatorResult {
	return IndicatorResult{Timestamp: timestamp, Value: value}
}

// NewMultiResult creates a multi-valued result.
func NewMultiResult(timestamp int64, values map[string]float64) IndicatorResult {
	return IndicatorResult{Timestamp: timestamp, Values: values}
}

// IsMulti reports whether the result carries a named record instead of a single number.
func (r IndicatorResult) IsMulti() bool {
	return r.Values != nil
}

// Field returns a named value of a multi-valued result.
func (r IndicatorResult) Field(name string) (float64, bool) {
	v, ok := r.Values[name]

	return v, ok
}

// FieldNames returns the sorted field names of a multi-valued result.
func (r IndicatorResult) FieldNames() []string {
	names := make([]string, 0, len(r.Values))
	for name := range r.Values {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

type indicatorResultJSON struct {
	Time  int64           `json:"time"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the result as {"time": ..., "value": number | record}.
func (r IndicatorResult) MarshalJSON() ([]byte, error) {
	var (
		value []byte
		err   error
	)

	if r.IsMulti() {
		value, err = json.Marshal(r.Values)
	} else {
		value, err = json.Marshal(r.Value)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to encode value at time %d: %w", r.Timestamp, err)
	}

	return json.Marshal(indicatorResultJSON{Time: r.Timestamp, Value: value})
}

// UnmarshalJSON decodes either value form.
func (r *IndicatorResult) UnmarshalJSON(data []byte) error {
	var raw indicatorResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Timestamp = raw.Time
	r.Value = 0
	r.Values = nil

	if len(raw.Value) == 0 || string(raw.Value) == "null" {
		return nil
	}

	if raw.Value[0] == '{' {
		return json.Unmarshal(raw.Value, &r.Values)
	}

	return json.Unmarshal(raw.Value, &r.Value)
}
