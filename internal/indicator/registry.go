package indicator

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// IndicatorRegistry manages all available indicators.
type IndicatorRegistry interface {
	RegisterIndicator(indicator Indicator) error
	GetIndicator(name types.IndicatorType) (Indicator, error)
	ListIndicators() []types.IndicatorType
	RemoveIndicator(name types.IndicatorType) error
}

// IndicatorRegistryV1 manages all available indicators.
type IndicatorRegistryV1 struct {
	indicators map[types.IndicatorType]Indicator
	mu         sync.RWMutex
}

// NewIndicatorRegistry creates a new, empty indicator registry.
func NewIndicatorRegistry() IndicatorRegistry {
	return &IndicatorRegistryV1{
		indicators: make(map[types.IndicatorType]Indicator),
		mu:         sync.RWMutex{},
	}
}

// DefaultIndicators returns a fresh instance of every catalog indicator.
func DefaultIndicators() []Indicator {
	return []Indicator{
		NewSMA(),
		NewEMA(),
		NewWMA(),
		NewHMA(),
		NewDEMA(),
		NewTEMA(),
		NewKAMA(),
		NewALMA(),
		NewBollingerBands(),
		NewRSI(),
		NewMACD(),
		NewStochasticOscillator(),
		NewATR(),
		NewWilliamsR(),
		NewCCI(),
	}
}

// NewDefaultRegistry creates a registry holding every catalog indicator. overrides
// replaces the defaults of individual indicators before they are registered.
func NewDefaultRegistry(overrides map[types.IndicatorType]types.ParameterSet) (IndicatorRegistry, error) {
	registry := NewIndicatorRegistry()

	for _, indicator := range DefaultIndicators() {
		if params, ok := overrides[indicator.Name()]; ok {
			if err := indicator.Config(params); err != nil {
				return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid defaults for %s", indicator.Name())
			}
		}

		if err := registry.RegisterIndicator(indicator); err != nil {
			return nil, err
		}
	}

	for name := range overrides {
		if !name.IsValid() {
			return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "cannot override defaults of unknown indicator %s", name)
		}
	}

	return registry, nil
}

// RegisterIndicator adds an indicator to the registry.
func (r *IndicatorRegistryV1) RegisterIndicator(indicator Indicator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := indicator.Name()
	if _, exists := r.indicators[name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "RegisterIndicator: indicator with name %s already registered", name)
	}

	r.indicators[name] = indicator

	return nil
}

// GetIndicator retrieves an indicator by name.
func (r *IndicatorRegistryV1) GetIndicator(name types.IndicatorType) (Indicator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indicator, exists := r.indicators[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "GetIndicator: indicator with name %s not found", name)
	}

	return indicator, nil
}

// ListIndicators returns the names of all registered indicators, sorted.
func (r *IndicatorRegistryV1) ListIndicators() []types.IndicatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.IndicatorType, 0, len(r.indicators))
	for name := range r.indicators {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// RemoveIndicator removes an indicator from the registry.
func (r *IndicatorRegistryV1) RemoveIndicator(name types.IndicatorType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indicators[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "RemoveIndicator: indicator with name %s not found", name)
	}

	delete(r.indicators, name)

	return nil
}
