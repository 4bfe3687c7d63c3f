package indicator

import (
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// Indicator interface defines methods that any technical indicator must implement.
// Implementations hold no per-call state, so one instance can serve concurrent callers.
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Config replaces the defaults used for parameters a caller leaves out.
	// It must be called before the indicator is shared.
	Config(params types.ParameterSet) error
	// Calculate computes the indicator over the whole series. Missing parameters fall
	// back to the configured defaults.
	Calculate(series []types.Candle, params types.ParameterSet) ([]types.IndicatorResult, error)
	// Label returns a short legend label such as "BB(20, 2)".
	Label(params types.ParameterSet) (string, error)
	// ConfigSchema returns the JSON schema of the indicator parameters with the current defaults.
	ConfigSchema() (*jsonschema.Schema, error)
}
