package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-indicators/internal/types"
)

// DataGenerator generates candle series for tests and benchmarks.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how candles are generated.
type GeneratorConfig struct {
	// StartTime is the open time of the first candle
	StartTime time.Time
	// Interval is the duration between each candle
	Interval time.Duration
	// Count is the number of candles to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement (0.01 = 1% typical move per candle)
	Volatility float64
	// Trend is the drift factor (-0.01 to 0.01 for bearish to bullish)
	Trend float64
	// VolumeBase is the average volume per candle
	VolumeBase float64
	// VolumeVariance is the variance in volume (0.0 to 1.0)
	VolumeVariance float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		StartTime:      time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Interval:       time.Minute,
		Count:          10000,
		InitialPrice:   100.0,
		Volatility:     0.002, // 0.2% per candle
		Trend:          0.0,   // neutral
		VolumeBase:     10000,
		VolumeVariance: 0.3,
	}
}

// Generate creates a candle series following a geometric Brownian motion model.
// Timestamps are unix seconds.
func (g *DataGenerator) Generate(config GeneratorConfig) []types.Candle {
	candles := make([]types.Candle, config.Count)
	currentPrice := config.InitialPrice
	currentTime := config.StartTime

	for i := 0; i < config.Count; i++ {
		open := currentPrice

		// Box-Muller transform for a standard normal sample
		u1 := 1 - g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		priceChange := config.Volatility * z
		drift := config.Trend / float64(config.Count) // Distribute trend across candles

		close := open * (1 + priceChange + drift)
		if close <= 0 {
			close = open * 0.99 // Prevent negative prices
		}

		// High and low extend past the open-close range
		highExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)
		lowExtension := math.Abs(g.rng.Float64() * config.Volatility * open * 0.5)

		high := math.Max(open, close) + highExtension
		low := math.Min(open, close) - lowExtension
		if low <= 0 {
			low = math.Min(open, close) * 0.99
		}

		volumeVariation := 1.0 + (g.rng.Float64()*2-1)*config.VolumeVariance
		volume := config.VolumeBase * volumeVariation
		if volume < 0 {
			volume = config.VolumeBase * 0.1
		}

		candles[i] = types.Candle{
			Timestamp: currentTime.Unix(),
			Open:      roundToDecimals(open, 4),
			High:      roundToDecimals(high, 4),
			Low:       roundToDecimals(low, 4),
			Close:     roundToDecimals(close, 4),
			Volume:    roundToDecimals(volume, 2),
		}

		currentPrice = close
		currentTime = currentTime.Add(config.Interval)
	}

	return candles
}

// GenerateBatch generates count independent series whose initial price and volatility
// vary around baseConfig.
func (g *DataGenerator) GenerateBatch(count int, baseConfig GeneratorConfig) [][]types.Candle {
	batch := make([][]types.Candle, 0, count)

	for i := 0; i < count; i++ {
		config := baseConfig
		config.InitialPrice = baseConfig.InitialPrice * (0.8 + g.rng.Float64()*0.4)
		config.Volatility = baseConfig.Volatility * (0.5 + g.rng.Float64()*2)

		batch = append(batch, g.Generate(config))
	}

	return batch
}

// Generate10K is a convenience function to generate 10,000 candles
// with default settings for benchmarking.
func Generate10K() []types.Candle {
	gen := NewDataGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Count = 10000

	return gen.Generate(config)
}

// FlatCandles returns count candles whose open, high, low and close all equal price.
func FlatCandles(count int, price float64) []types.Candle {
	candles := make([]types.Candle, count)
	for i := range candles {
		candles[i] = types.Candle{
			Timestamp: int64(i + 1),
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
			Volume:    1,
		}
	}

	return candles
}

// CandlesFromCloses builds a series from close prices. Open is the previous close and
// high/low span open and close, so the candles are well-formed. Timestamps start at 1.
func CandlesFromCloses(closes ...float64) []types.Candle {
	candles := make([]types.Candle, len(closes))
	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}

		candles[i] = types.Candle{
			Timestamp: int64(i + 1),
			Open:      open,
			High:      math.Max(open, c),
			Low:       math.Min(open, c),
			Close:     c,
			Volume:    1,
		}
	}

	return candles
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
