package footprint

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rshade/coalprint/internal/greenops"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// Line is one category's row in a Report. KgCO2e is 0 when Overflow is set.
type Line struct {
	Category string  `json:"category"`
	Value    string  `json:"value"`
	Unit     string  `json:"unit"`
	Factor   float64 `json:"factor"`
	KgCO2e   float64 `json:"kg_co2e"`
	Coerced  bool    `json:"coerced,omitempty"`
	Overflow bool    `json:"overflow,omitempty"`
}

// Report is the serializable view of a Result used by headless output.
// JSON cannot carry infinities, so TotalKg is 0 when Overflow is set.
type Report struct {
	Lines              []Line  `json:"categories"`
	TotalKg            float64 `json:"total_kg"`
	Total              string  `json:"total"`
	Overflow           bool    `json:"overflow,omitempty"`
	Percent            float64 `json:"percent"`
	PercentDisplay     string  `json:"percent_display"`
	ReferenceKg        float64 `json:"reference_kg"`
	Equivalency        string  `json:"equivalency,omitempty"`
	EquivalencyCompact string  `json:"equivalency_compact,omitempty"`
}

// NewReport builds a Report from res, including the equivalency texts when
// the total is large enough to have them.
func NewReport(ctx context.Context, res Result) Report {
	r := Report{
		Lines:          make([]Line, 0, CategoryCount),
		Total:          FormatTotal(res.TotalKg),
		Overflow:       res.Overflow(),
		Percent:        res.Percent,
		PercentDisplay: FormatPercent(res.Percent),
		ReferenceKg:    ReferenceKg,
	}
	if !r.Overflow {
		r.TotalKg = res.TotalKg
		r.Equivalency, r.EquivalencyCompact = equivalencyTexts(ctx, res.TotalKg)
	}

	for _, c := range Categories() {
		line := Line{
			Category: c.String(),
			Value:    DisplayValue(strings.TrimSpace(res.Values[c])),
			Unit:     c.Unit(),
			Factor:   Factor(c),
			Coerced:  res.Coerced[c],
			Overflow: !isFinite(res.Contributions[c]),
		}
		if !line.Overflow {
			line.KgCO2e = res.Contributions[c]
		}
		r.Lines = append(r.Lines, line)
	}
	return r
}

func equivalencyTexts(ctx context.Context, kg float64) (string, string) {
	out, err := greenops.Calculate(ctx, kg)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("component", "footprint").Msg("equivalency calculation failed")
		return "", ""
	}
	if out.IsEmpty {
		return "", ""
	}
	return out.DisplayText, out.CompactText
}

// RenderTable writes the report as a plain aligned table. The equivalency
// is appended to the total line in its compact form.
func RenderTable(w io.Writer, r Report) error {
	fmt.Fprintln(w, "CARBON FOOTPRINT SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", len("CARBON FOOTPRINT SUMMARY")))

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tVALUE\tUNIT\tKG CO2E")
	fmt.Fprintln(tw, "--------\t-----\t----\t-------")
	for _, l := range r.Lines {
		value := l.Value
		if l.Coerced {
			value += " (not a number, counted as 0)"
		}
		kg := FormatTotal(l.KgCO2e)
		if l.Overflow {
			kg = OverflowText
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Category, value, l.Unit, kg)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	fmt.Fprintln(w)
	total := "Total Emissions: " + r.Total
	if !r.Overflow {
		total += " kg CO2e"
	}
	if r.EquivalencyCompact != "" {
		total += " " + r.EquivalencyCompact
	}
	fmt.Fprintln(w, total)
	fmt.Fprintf(w, "%s of %.0f kg CO2e\n", r.PercentDisplay, r.ReferenceKg)
	return nil
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// RenderFactors writes the compiled-in emission factor table for cats, or for
// every category when cats is empty.
func RenderFactors(w io.Writer, cats []Category) error {
	if len(cats) == 0 {
		cats = Categories()
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tUNIT\tKG CO2E PER UNIT\tDESCRIPTION")
	fmt.Fprintln(tw, "--------\t----\t----------------\t-----------")
	for _, c := range cats {
		info := c.Info()
		fmt.Fprintf(tw, "%s\t%s\t%g\t%s\n", c, info.Unit, Factor(c), info.Tooltip)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}
	return nil
}
