package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/logger"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to the engine config `FILE` (YAML)",
	}
}

// calculateAction computes one indicator over a candle file and writes the results.
func calculateAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		engine, err := newEngine(cmd.String("config"))
		if err != nil {
			return err
		}

		candles, err := loadCandles(cmd.String("input"))
		if err != nil {
			return err
		}

		params, err := parseParams(cmd.StringSlice("param"))
		if err != nil {
			return err
		}

		id := cmd.String("id")

		if cmd.Bool("lenient") {
			results := engine.CalculateIndicator(id, candles, params)

			return writeResults(out, cmd.String("format"), roundResults(results, int32(cmd.Int("precision"))))
		}

		results, err := engine.Calculate(id, candles, params)
		if err != nil {
			return fmt.Errorf("failed to calculate %s: %w", id, err)
		}

		return writeResults(out, cmd.String("format"), roundResults(results, int32(cmd.Int("precision"))))
	}
}

// listAction prints the indicator catalog.
func listAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		engine, err := newEngine(cmd.String("config"))
		if err != nil {
			return err
		}

		catalog, err := engine.Catalog()
		if err != nil {
			return fmt.Errorf("failed to build catalog: %w", err)
		}

		if cmd.Bool("json") {
			return writeJSON(out, catalog)
		}

		_, err = fmt.Fprint(out, renderCatalog(catalog))

		return err
	}
}

// schemaAction prints the parameter schema of one indicator, or the engine config
// schema when no indicator is given.
func schemaAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		id := cmd.String("id")
		if id == "" {
			reflector := jsonschema.Reflector{DoNotReference: true}

			return writeJSON(out, reflector.Reflect(&config.EngineConfig{}))
		}

		engine, err := newEngine(cmd.String("config"))
		if err != nil {
			return err
		}

		descriptor, err := engine.Describe(id)
		if err != nil {
			return err
		}

		return writeJSON(out, descriptor.Schema)
	}
}

// newEngine builds an engine from the config file at path, or from the defaults when
// path is empty. Diagnostics go to stderr.
func newEngine(path string) (*indicator.Engine, error) {
	cfg := config.DefaultConfig()

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	diagnostics, err := logger.NewStderrLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return indicator.NewEngineFromConfig(cfg, indicator.WithLogger(diagnostics))
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "indicators",
		Usage:   "Compute technical indicators over OHLCV candle files",
		Version: version.GetVersion(),
		Writer:  out,
		Commands: []*cli.Command{
			{
				Name:  "calculate",
				Usage: "Calculate an indicator over a candle file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Aliases:  []string{"i"},
						Usage:    "Indicator id or alias, e.g. sma, bb, stoch",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "input",
						Usage:    "Candle `FILE` (.csv, .json, .yaml)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "param",
						Aliases: []string{"p"},
						Usage:   "Indicator parameter as `KEY=VALUE`, may be repeated",
					},
					&cli.IntFlag{
						Name:  "precision",
						Usage: "Round values to this many decimal places; negative keeps full precision",
						Value: -1,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: json or csv",
						Value:   formatJSON,
					},
					&cli.BoolFlag{
						Name:  "lenient",
						Usage: "Print an empty result instead of failing",
					},
					configFlag(),
				},
				Action: calculateAction(out),
			},
			{
				Name:  "list",
				Usage: "List the available indicators",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the catalog as JSON",
					},
					configFlag(),
				},
				Action: listAction(out),
			},
			{
				Name:  "schema",
				Usage: "Print the parameter schema of an indicator, or the engine config schema",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "id",
						Aliases: []string{"i"},
						Usage:   "Indicator id or alias; omit for the engine config schema",
					},
					configFlag(),
				},
				Action: schemaAction(out),
			},
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
