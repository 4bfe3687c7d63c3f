package indicator

import (
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Pane is where a chart draws an indicator.
type Pane string

const (
	// PaneOverlay draws on top of the price candles.
	PaneOverlay Pane = "overlay"
	// PaneSeparate draws in its own pane below the price chart.
	PaneSeparate Pane = "separate"
)

// Descriptor is the presentation metadata of one catalog indicator.
type Descriptor struct {
	Type        types.IndicatorType `json:"type"`
	DisplayName string              `json:"displayName"`
	// Label is the legend label with the current defaults, e.g. "BB(20, 2)".
	Label string `json:"label"`
	Color string `json:"color"`
	Pane  Pane   `json:"pane"`
	// Outputs lists the fields of a multi-valued result; empty for single-valued indicators.
	Outputs []string           `json:"outputs,omitempty"`
	Schema  *jsonschema.Schema `json:"schema"`
}

type presentation struct {
	displayName string
	color       string
	pane        Pane
	outputs     []string
}

var presentations = map[types.IndicatorType]presentation{
	types.IndicatorTypeSMA:                  {"Simple Moving Average", "#2962FF", PaneOverlay, nil},
	types.IndicatorTypeEMA:                  {"Exponential Moving Average", "#FF6D00", PaneOverlay, nil},
	types.IndicatorTypeWMA:                  {"Weighted Moving Average", "#00BCD4", PaneOverlay, nil},
	types.IndicatorTypeHMA:                  {"Hull Moving Average", "#E91E63", PaneOverlay, nil},
	types.IndicatorTypeDEMA:                 {"Double Exponential Moving Average", "#4CAF50", PaneOverlay, nil},
	types.IndicatorTypeTEMA:                 {"Triple Exponential Moving Average", "#9C27B0", PaneOverlay, nil},
	types.IndicatorTypeKAMA:                 {"Kaufman Adaptive Moving Average", "#795548", PaneOverlay, nil},
	types.IndicatorTypeALMA:                 {"Arnaud Legoux Moving Average", "#009688", PaneOverlay, nil},
	types.IndicatorTypeBollingerBands:       {"Bollinger Bands", "#2196F3", PaneOverlay, []string{"upper", "middle", "lower"}},
	types.IndicatorTypeRSI:                  {"Relative Strength Index", "#7E57C2", PaneSeparate, nil},
	types.IndicatorTypeMACD:                 {"MACD", "#2962FF", PaneSeparate, []string{"macd", "signal", "histogram"}},
	types.IndicatorTypeStochasticOscillator: {"Stochastic Oscillator", "#FF9800", PaneSeparate, []string{"k", "d"}},
	types.IndicatorTypeATR:                  {"Average True Range", "#B71C1C", PaneSeparate, nil},
	types.IndicatorTypeWilliamsR:            {"Williams %R", "#673AB7", PaneSeparate, nil},
	types.IndicatorTypeCCI:                  {"Commodity Channel Index", "#3F51B5", PaneSeparate, nil},
}

// Catalog describes every registered indicator in catalog order. Indicators registered
// outside the built-in catalog follow, sorted by name, with a generic presentation.
func (e *Engine) Catalog() ([]Descriptor, error) {
	registered := make(map[types.IndicatorType]bool)
	for _, name := range e.registry.ListIndicators() {
		registered[name] = true
	}

	order := make([]types.IndicatorType, 0, len(registered))
	for _, name := range types.AllIndicatorTypes() {
		if registered[name] {
			order = append(order, name)
			delete(registered, name)
		}
	}

	for _, name := range e.registry.ListIndicators() {
		if registered[name] {
			order = append(order, name)
		}
	}

	descriptors := make([]Descriptor, 0, len(order))

	for _, name := range order {
		descriptor, err := e.describe(name)
		if err != nil {
			return nil, err
		}

		descriptors = append(descriptors, descriptor)
	}

	return descriptors, nil
}

// Describe returns the descriptor of a single indicator.
func (e *Engine) Describe(id string) (Descriptor, error) {
	name, _, err := e.lookup(id)
	if err != nil {
		return Descriptor{}, err
	}

	return e.describe(name)
}

func (e *Engine) describe(name types.IndicatorType) (Descriptor, error) {
	indicator, err := e.registry.GetIndicator(name)
	if err != nil {
		return Descriptor{}, err
	}

	label, err := indicator.Label(nil)
	if err != nil {
		return Descriptor{}, err
	}

	schema, err := indicator.ConfigSchema()
	if err != nil {
		return Descriptor{}, err
	}

	p, ok := presentations[name]
	if !ok {
		p = presentation{displayName: string(name), color: "#787B86", pane: PaneSeparate}
	}

	return Descriptor{
		Type:        name,
		DisplayName: p.displayName,
		Label:       label,
		Color:       p.color,
		Pane:        p.pane,
		Outputs:     append([]string(nil), p.outputs...),
		Schema:      schema,
	}, nil
}

// Catalog describes the default catalog. See Engine.Catalog.
func Catalog() ([]Descriptor, error) {
	return defaultEngine().Catalog()
}
