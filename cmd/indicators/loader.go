package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"gopkg.in/yaml.v3"
)

// loadCandles reads a candle series from a CSV, JSON or YAML file. The format follows
// the file extension.
func loadCandles(path string) ([]types.Candle, error) {
	var candles []types.Candle

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open candle file: %w", err)
		}
		defer file.Close()

		if err := gocsv.UnmarshalFile(file, &candles); err != nil {
			return nil, fmt.Errorf("failed to parse CSV candles: %w", err)
		}
	case ".json", ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read candle file: %w", err)
		}

		if ext == ".json" {
			err = json.Unmarshal(data, &candles)
		} else {
			err = yaml.Unmarshal(data, &candles)
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse candles: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported candle file extension %q", ext)
	}

	return candles, nil
}

// parseParams turns KEY=VALUE pairs into a parameter set. Numeric values become
// float64; everything else stays a string.
func parseParams(pairs []string) (types.ParameterSet, error) {
	params := make(types.ParameterSet, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)

		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrCodeInvalidParameter, "invalid parameter %q, expected KEY=VALUE", pair)
		}

		value = strings.TrimSpace(value)

		if number, err := strconv.ParseFloat(value, 64); err == nil {
			params[key] = number
		} else {
			params[key] = value
		}
	}

	return params, nil
}
