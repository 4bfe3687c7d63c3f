package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-indicators/internal/indicator"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/shopspring/decimal"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for secondary text.
	HelpStyle = lipgloss.NewStyle().Faint(true)
)

// roundResults rounds every value to precision decimal places. A negative precision
// returns results unchanged.
func roundResults(results []types.IndicatorResult, precision int32) []types.IndicatorResult {
	if precision < 0 {
		return results
	}

	rounded := make([]types.IndicatorResult, len(results))

	for i, result := range results {
		if !result.IsMulti() {
			rounded[i] = types.NewResult(result.Timestamp, roundValue(result.Value, precision))

			continue
		}

		values := make(map[string]float64, len(result.Values))
		for name, v := range result.Values {
			values[name] = roundValue(v, precision)
		}

		rounded[i] = types.NewMultiResult(result.Timestamp, values)
	}

	return rounded
}

func roundValue(v float64, precision int32) float64 {
	return decimal.NewFromFloat(v).Round(precision).InexactFloat64()
}

func writeResults(out io.Writer, format string, results []types.IndicatorResult) error {
	switch format {
	case formatJSON:
		if results == nil {
			results = []types.IndicatorResult{}
		}

		return writeJSON(out, results)
	case formatCSV:
		return writeResultsCSV(out, results)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// writeResultsCSV writes a "time" column followed by "value", or one column per field
// of a multi-valued result in sorted order.
func writeResultsCSV(out io.Writer, results []types.IndicatorResult) error {
	fields := []string{"value"}
	if len(results) > 0 && results[0].IsMulti() {
		fields = results[0].FieldNames()
	}

	writer := csv.NewWriter(out)

	if err := writer.Write(append([]string{"time"}, fields...)); err != nil {
		return err
	}

	for _, result := range results {
		row := make([]string, 0, len(fields)+1)
		row = append(row, strconv.FormatInt(result.Timestamp, 10))

		for _, field := range fields {
			v := result.Value
			if result.IsMulti() {
				v = result.Values[field]
			}

			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

// renderCatalog formats the catalog as aligned text, one indicator per line.
func renderCatalog(catalog []indicator.Descriptor) string {
	idWidth, labelWidth := len("ID"), len("LABEL")
	for _, d := range catalog {
		idWidth = max(idWidth, len(d.Type))
		labelWidth = max(labelWidth, len(d.Label))
	}

	var b strings.Builder

	header := fmt.Sprintf("  %-*s  %-*s  %-8s  %s", idWidth, "ID", labelWidth, "LABEL", "PANE", "NAME")
	b.WriteString(TitleStyle.Render(header))
	b.WriteString("\n")

	for _, d := range catalog {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render("■")

		fmt.Fprintf(&b, "%s %-*s  %-*s  %-8s  %s", swatch, idWidth, d.Type, labelWidth, d.Label, d.Pane, d.DisplayName)

		if len(d.Outputs) > 0 {
			b.WriteString(HelpStyle.Render(" [" + strings.Join(d.Outputs, ", ") + "]"))
		}

		b.WriteString("\n")
	}

	return b.String()
}
