package mocks

//go:generate mockgen -destination=./mock_indicator.go -package=mocks github.com/rxtech-lab/argo-indicators/internal/indicator Indicator
//go:generate mockgen -destination=./mock_indicator_registry.go -package=mocks github.com/rxtech-lab/argo-indicators/internal/indicator IndicatorRegistry
